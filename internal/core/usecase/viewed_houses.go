package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type MarkHouseViewedUseCase struct {
	repo port.ViewedRepositoryPort
}

func NewMarkHouseViewedUseCase(repo port.ViewedRepositoryPort) *MarkHouseViewedUseCase {
	return &MarkHouseViewedUseCase{repo: repo}
}

// Execute помечает дом просмотренным. Повторный просмотр обновляет отметку времени.
func (uc *MarkHouseViewedUseCase) Execute(ctx context.Context, userID, houseID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "MarkHouseViewed",
		"user_id":  userID.String(),
		"house_id": houseID.String(),
	})

	if err := uc.repo.MarkViewed(ctx, userID, houseID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	return nil
}

type GetViewedHousesUseCase struct {
	repo port.ViewedRepositoryPort
}

func NewGetViewedHousesUseCase(repo port.ViewedRepositoryPort) *GetViewedHousesUseCase {
	return &GetViewedHousesUseCase{repo: repo}
}

func (uc *GetViewedHousesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.HouseCard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetViewedHouses",
		"user_id":  userID.String(),
	})

	cards, err := uc.repo.ListCards(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	return cards, nil
}
