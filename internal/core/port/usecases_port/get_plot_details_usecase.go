package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPlotDetailsUseCase interface {
	Execute(ctx context.Context, plotID uuid.UUID) (*domain.Plot, error)
}
