package usecase

import (
	"context"
	"encoding/json"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/contracts"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type UpdateBlockContentUseCase struct {
	repo port.BlockRepositoryPort
}

func NewUpdateBlockContentUseCase(repo port.BlockRepositoryPort) *UpdateBlockContentUseCase {
	return &UpdateBlockContentUseCase{repo: repo}
}

// Execute полностью заменяет содержимое блока. Тип блока неизменяем:
// форма содержимого проверяется по схеме типа, записанного в самом блоке.
func (uc *UpdateBlockContentUseCase) Execute(ctx context.Context, blockID uuid.UUID, rawContent json.RawMessage) (*domain.HomepageBlock, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateBlockContent",
		"block_id": blockID.String(),
	})

	block, err := uc.repo.GetByID(ctx, blockID)
	if err != nil {
		ucLogger.Error("Failed to load block", err, nil)
		return nil, err
	}
	if block == nil {
		ucLogger.Warn("Block not found", nil)
		return nil, domain.ErrNotFound
	}

	if err := contracts.ValidateBlockContent(block.BlockType, rawContent); err != nil {
		ucLogger.Warn("Content failed schema validation", port.Fields{
			"block_type": block.BlockType, "error": err.Error(),
		})
		return nil, err
	}

	content, err := domain.DecodeContent(block.BlockType, rawContent)
	if err != nil {
		ucLogger.Warn("Content failed decoding", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.repo.UpdateContent(ctx, blockID, content); err != nil {
		ucLogger.Error("Failed to update block content", err, nil)
		return nil, err
	}

	block.Content = content
	ucLogger.Info("Block content replaced", nil)
	return block, nil
}
