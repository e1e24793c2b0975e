package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"
)

type FindHousesUseCase interface {
	Execute(ctx context.Context, settlement domain.Settlement, filters domain.CatalogFilters) ([]domain.House, error)
}
