package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type SetBlockEnabledUseCase struct {
	repo port.BlockRepositoryPort
}

func NewSetBlockEnabledUseCase(repo port.BlockRepositoryPort) *SetBlockEnabledUseCase {
	return &SetBlockEnabledUseCase{repo: repo}
}

// Execute включает или выключает блок, не трогая его порядок. Идемпотентно.
func (uc *SetBlockEnabledUseCase) Execute(ctx context.Context, blockID uuid.UUID, enabled bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SetBlockEnabled",
		"block_id": blockID.String(),
		"enabled":  enabled,
	})

	if err := uc.repo.SetEnabled(ctx, blockID, enabled); err != nil {
		ucLogger.Error("Failed to toggle block", err, nil)
		return err
	}

	ucLogger.Info("Block visibility updated", nil)
	return nil
}
