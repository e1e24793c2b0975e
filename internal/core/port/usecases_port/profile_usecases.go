package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetProfileUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type UpdateProfileUseCase interface {
	Execute(ctx context.Context, profile domain.Profile) error
}
