package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"
)

type ListBlocksUseCase interface {
	Execute(ctx context.Context, settlement domain.Settlement) ([]domain.HomepageBlock, error)
}
