package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"
)

// MoveDirection — направление перемещения блока в отсортированном списке.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

type MoveBlockUseCase interface {
	// Execute принимает индекс блока в ТЕКУЩЕМ отсортированном списке,
	// а не значение sort_order. Перемещение за границу — no-op.
	Execute(ctx context.Context, settlement domain.Settlement, index int, direction MoveDirection) error
}
