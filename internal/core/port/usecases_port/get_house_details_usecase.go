package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetHouseDetailsUseCase interface {
	Execute(ctx context.Context, houseID uuid.UUID) (*domain.House, error)
}
