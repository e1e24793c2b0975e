package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

type AddToFavoritesUseCase interface {
	Execute(ctx context.Context, userID, houseID uuid.UUID) error
}

type RemoveFromFavoritesUseCase interface {
	Execute(ctx context.Context, userID, houseID uuid.UUID) error
}

type GetUserFavoritesUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.HouseCard, error)
}

type GetUserFavoriteIDsUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type MarkHouseViewedUseCase interface {
	Execute(ctx context.Context, userID, houseID uuid.UUID) error
}

type GetViewedHousesUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.HouseCard, error)
}
