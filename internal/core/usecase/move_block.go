package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
	"settlements-service/internal/core/port/usecases_port"
)

type MoveBlockUseCase struct {
	repo port.BlockRepositoryPort
}

func NewMoveBlockUseCase(repo port.BlockRepositoryPort) *MoveBlockUseCase {
	return &MoveBlockUseCase{repo: repo}
}

// Execute перемещает блок на одну позицию вверх или вниз. index — позиция
// блока в текущем отсортированном списке, не значение sort_order. Соседство
// определяется порядком сортировки, а не смежностью значений.
//
// Перемещение первого блока вверх и последнего вниз — no-op, не ошибка.
// Сам обмен sort_order двух строк выполняется репозиторием в одной
// транзакции: при частичном сбое обе строки остаются неизменными.
func (uc *MoveBlockUseCase) Execute(ctx context.Context, settlement domain.Settlement, index int, direction usecases_port.MoveDirection) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "MoveBlock",
		"settlement": settlement,
		"index":      index,
		"direction":  direction,
	})

	if direction != usecases_port.MoveUp && direction != usecases_port.MoveDown {
		return domain.NewValidationError("direction", "direction must be 'up' or 'down'")
	}

	blocks, err := uc.repo.ListBySettlement(ctx, settlement)
	if err != nil {
		ucLogger.Error("Failed to list blocks", err, nil)
		return err
	}

	if index < 0 || index >= len(blocks) {
		ucLogger.Warn("Index out of range", port.Fields{"blocks_count": len(blocks)})
		return domain.NewValidationError("index", "index out of range")
	}

	// Границы списка: двигать некуда, состояние не меняется.
	if direction == usecases_port.MoveUp && index == 0 {
		ucLogger.Debug("Move up at the top is a no-op", nil)
		return nil
	}
	if direction == usecases_port.MoveDown && index == len(blocks)-1 {
		ucLogger.Debug("Move down at the bottom is a no-op", nil)
		return nil
	}

	neighborIndex := index - 1
	if direction == usecases_port.MoveDown {
		neighborIndex = index + 1
	}

	if err := uc.repo.SwapOrder(ctx, blocks[index], blocks[neighborIndex]); err != nil {
		ucLogger.Error("Failed to swap block order", err, nil)
		return err
	}

	ucLogger.Info("Blocks swapped", port.Fields{
		"block_id":    blocks[index].ID.String(),
		"neighbor_id": blocks[neighborIndex].ID.String(),
	})
	return nil
}
