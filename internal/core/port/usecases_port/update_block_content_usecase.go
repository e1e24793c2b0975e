package usecases_port

import (
	"context"
	"encoding/json"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

type UpdateBlockContentUseCase interface {
	// Execute принимает сырое JSON-содержимое: его форма проверяется
	// по схеме типа блока до записи.
	Execute(ctx context.Context, blockID uuid.UUID, rawContent json.RawMessage) (*domain.HomepageBlock, error)
}
