package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type GetUserFavoritesUseCase struct {
	repo port.FavoritesRepositoryPort
}

func NewGetUserFavoritesUseCase(repo port.FavoritesRepositoryPort) *GetUserFavoritesUseCase {
	return &GetUserFavoritesUseCase{repo: repo}
}

func (uc *GetUserFavoritesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.HouseCard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavorites",
		"user_id":  userID.String(),
	})

	cards, err := uc.repo.ListCards(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Favorites loaded", port.Fields{"count": len(cards)})
	return cards, nil
}
