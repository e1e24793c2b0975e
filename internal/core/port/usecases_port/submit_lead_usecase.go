package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"
)

type SubmitLeadUseCase interface {
	Execute(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
}
