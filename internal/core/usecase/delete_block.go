package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type DeleteBlockUseCase struct {
	repo port.BlockRepositoryPort
}

func NewDeleteBlockUseCase(repo port.BlockRepositoryPort) *DeleteBlockUseCase {
	return &DeleteBlockUseCase{repo: repo}
}

// Execute удаляет блок навсегда. Оставшиеся блоки не перенумеровываются:
// разрывы в sort_order допустимы, важен только относительный порядок.
func (uc *DeleteBlockUseCase) Execute(ctx context.Context, blockID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteBlock",
		"block_id": blockID.String(),
	})

	if err := uc.repo.Delete(ctx, blockID); err != nil {
		ucLogger.Error("Failed to delete block", err, nil)
		return err
	}

	ucLogger.Info("Block deleted", nil)
	return nil
}
