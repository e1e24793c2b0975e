package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type AddToFavoritesUseCase struct {
	repo port.FavoritesRepositoryPort
}

func NewAddToFavoritesUseCase(repo port.FavoritesRepositoryPort) *AddToFavoritesUseCase {
	return &AddToFavoritesUseCase{repo: repo}
}

func (uc *AddToFavoritesUseCase) Execute(ctx context.Context, userID, houseID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "AddToFavorites",
		"user_id":  userID.String(),
		"house_id": houseID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.repo.Add(ctx, userID, houseID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
