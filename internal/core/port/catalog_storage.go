package port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

// HouseStoragePort — хранилище домов.
type HouseStoragePort interface {
	// FindWithFilters возвращает опубликованные дома поселка,
	// отсортированные по возрастанию цены.
	FindWithFilters(ctx context.Context, settlement domain.Settlement, filters domain.CatalogFilters) ([]domain.House, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.House, error)

	Create(ctx context.Context, house *domain.House) error
	Update(ctx context.Context, house *domain.House) error
	Delete(ctx context.Context, id uuid.UUID) error

	// MapPoints — опубликованные дома с координатами для карты поселка.
	MapPoints(ctx context.Context, settlement domain.Settlement) ([]domain.MapPoint, error)
}

// PlotStoragePort — хранилище земельных участков.
type PlotStoragePort interface {
	FindWithFilters(ctx context.Context, settlement domain.Settlement, filters domain.CatalogFilters) ([]domain.Plot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Plot, error)

	Create(ctx context.Context, plot *domain.Plot) error
	Update(ctx context.Context, plot *domain.Plot) error
	Delete(ctx context.Context, id uuid.UUID) error

	MapPoints(ctx context.Context, settlement domain.Settlement) ([]domain.MapPoint, error)
}
