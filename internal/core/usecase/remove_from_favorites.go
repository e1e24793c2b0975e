package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type RemoveFromFavoritesUseCase struct {
	repo port.FavoritesRepositoryPort
}

func NewRemoveFromFavoritesUseCase(repo port.FavoritesRepositoryPort) *RemoveFromFavoritesUseCase {
	return &RemoveFromFavoritesUseCase{repo: repo}
}

func (uc *RemoveFromFavoritesUseCase) Execute(ctx context.Context, userID, houseID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RemoveFromFavorites",
		"user_id":  userID.String(),
		"house_id": houseID.String(),
	})

	if err := uc.repo.Remove(ctx, userID, houseID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Removed from favorites", nil)
	return nil
}
