package usecase

import (
	"context"
	"time"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type SubmitLeadUseCase struct {
	storage port.LeadStoragePort
	events  port.LeadEventsPort // может быть nil, если уведомления выключены
}

func NewSubmitLeadUseCase(storage port.LeadStoragePort, events port.LeadEventsPort) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{storage: storage, events: events}
}

// Execute проверяет поля формы и записывает обращение со статусом "new".
// Никаких повторов: при ошибке записи вызывающая сторона получает её как есть.
// Уведомление бэк-офиса публикуется после успешной записи; сбой публикации
// логируется, но не отменяет уже сохраненное обращение.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "SubmitLead",
		"kind":       lead.Kind,
		"settlement": lead.Settlement,
	})

	if err := domain.ValidateLead(lead); err != nil {
		ucLogger.Warn("Lead rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	lead.ID = uuid.New()
	lead.Status = domain.RequestStatusNew
	lead.CreatedAt = time.Now().UTC()

	if err := uc.storage.Insert(ctx, &lead); err != nil {
		ucLogger.Error("Failed to insert lead", err, nil)
		return nil, err
	}

	ucLogger.Info("Lead saved", port.Fields{"lead_id": lead.ID.String()})

	if uc.events != nil {
		if err := uc.events.LeadCreated(ctx, &lead); err != nil {
			ucLogger.Warn("Failed to publish lead notification", port.Fields{"error": err.Error()})
		}
	}

	return &lead, nil
}
