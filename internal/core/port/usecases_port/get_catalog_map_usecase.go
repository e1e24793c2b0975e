package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"
)

type GetCatalogMapUseCase interface {
	Execute(ctx context.Context, settlement domain.Settlement) ([]domain.MapPoint, error)
}
