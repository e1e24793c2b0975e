package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"
)

type CreateBlockUseCase interface {
	Execute(ctx context.Context, settlement domain.Settlement, blockType domain.BlockType) (*domain.HomepageBlock, error)
}
