package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type GetUserFavoriteIDsUseCase struct {
	repo port.FavoritesRepositoryPort
}

func NewGetUserFavoriteIDsUseCase(repo port.FavoritesRepositoryPort) *GetUserFavoriteIDsUseCase {
	return &GetUserFavoriteIDsUseCase{repo: repo}
}

func (uc *GetUserFavoriteIDsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavoriteIDs",
		"user_id":  userID.String(),
	})

	ids, err := uc.repo.ListIDs(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	return ids, nil
}
