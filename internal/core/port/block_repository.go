package port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

// BlockRepositoryPort — хранилище блоков главной страницы.
type BlockRepositoryPort interface {
	// ListBySettlement возвращает все блоки поселка (включая выключенные),
	// отсортированные по sort_order, при равенстве — по id.
	ListBySettlement(ctx context.Context, settlement domain.Settlement) ([]domain.HomepageBlock, error)

	GetByID(ctx context.Context, id uuid.UUID) (*domain.HomepageBlock, error)

	Create(ctx context.Context, block *domain.HomepageBlock) error

	// UpdateContent полностью заменяет содержимое блока (не partial patch).
	UpdateContent(ctx context.Context, id uuid.UUID, content domain.BlockContent) error

	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error

	Delete(ctx context.Context, id uuid.UUID) error

	// SwapOrder меняет местами sort_order двух блоков в ОДНОЙ транзакции.
	// При любой ошибке обе строки остаются неизменными.
	SwapOrder(ctx context.Context, first, second domain.HomepageBlock) error
}
