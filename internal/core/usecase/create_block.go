package usecase

import (
	"context"
	"time"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateBlockUseCase struct {
	repo port.BlockRepositoryPort
}

func NewCreateBlockUseCase(repo port.BlockRepositoryPort) *CreateBlockUseCase {
	return &CreateBlockUseCase{repo: repo}
}

// Execute создает блок с порядком max(sort_order)+1 (или 0 для пустого
// поселка) и содержимым-заготовкой для его типа. Новый блок сразу включен.
func (uc *CreateBlockUseCase) Execute(ctx context.Context, settlement domain.Settlement, blockType domain.BlockType) (*domain.HomepageBlock, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "CreateBlock",
		"settlement": settlement,
		"block_type": blockType,
	})

	content, err := domain.DefaultContent(blockType)
	if err != nil {
		ucLogger.Warn("Rejected unknown block type", port.Fields{"error": err.Error()})
		return nil, err
	}

	blocks, err := uc.repo.ListBySettlement(ctx, settlement)
	if err != nil {
		ucLogger.Error("Failed to list existing blocks", err, nil)
		return nil, err
	}

	// Список отсортирован по sort_order, поэтому максимум — у последнего.
	newOrder := 0
	if len(blocks) > 0 {
		newOrder = blocks[len(blocks)-1].SortOrder + 1
	}

	now := time.Now().UTC()
	block := &domain.HomepageBlock{
		ID:         uuid.New(),
		Settlement: settlement,
		BlockType:  blockType,
		SortOrder:  newOrder,
		IsEnabled:  true,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.repo.Create(ctx, block); err != nil {
		ucLogger.Error("Failed to create block", err, nil)
		return nil, err
	}

	ucLogger.Info("Block created", port.Fields{"block_id": block.ID.String(), "sort_order": newOrder})
	return block, nil
}
