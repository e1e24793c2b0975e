package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type SetBlockEnabledUseCase interface {
	Execute(ctx context.Context, blockID uuid.UUID, enabled bool) error
}
