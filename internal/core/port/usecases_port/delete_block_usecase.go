package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeleteBlockUseCase interface {
	Execute(ctx context.Context, blockID uuid.UUID) error
}
