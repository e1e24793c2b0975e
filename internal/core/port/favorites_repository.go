package port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

// FavoritesRepositoryPort — избранные дома пользователя.
type FavoritesRepositoryPort interface {
	Add(ctx context.Context, userID, houseID uuid.UUID) error
	Remove(ctx context.Context, userID, houseID uuid.UUID) error
	ListCards(ctx context.Context, userID uuid.UUID) ([]domain.HouseCard, error)
	ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// ViewedRepositoryPort — история просмотренных домов.
type ViewedRepositoryPort interface {
	MarkViewed(ctx context.Context, userID, houseID uuid.UUID) error
	ListCards(ctx context.Context, userID uuid.UUID) ([]domain.HouseCard, error)
}
