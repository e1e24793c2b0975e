package port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

// LeadStoragePort — хранилище обращений (contact/viewing/support).
type LeadStoragePort interface {
	Insert(ctx context.Context, lead *domain.Lead) error

	// List возвращает обращения поселка. Пустой status означает "все статусы".
	List(ctx context.Context, settlement domain.Settlement, kind domain.LeadKind, status domain.RequestStatus) ([]domain.Lead, error)

	UpdateStatus(ctx context.Context, kind domain.LeadKind, id uuid.UUID, status domain.RequestStatus) error
}

// LeadEventsPort — уведомление бэк-офиса о новом обращении.
// Публикация не влияет на результат операции: источником истины остается БД.
type LeadEventsPort interface {
	LeadCreated(ctx context.Context, lead *domain.Lead) error
}
