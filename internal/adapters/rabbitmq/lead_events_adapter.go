package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"settlements-service/internal/constants"
	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
	"settlements-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadEventsAdapter реализует интерфейс LeadEventsPort для RabbitMQ.
// Публикация уведомляет бэк-офис о новом обращении; БД остается
// источником истины, поэтому ошибки публикации не фатальны для вызывающего.
type LeadEventsAdapter struct {
	producer *rabbitmq_producer.Publisher
}

func NewLeadEventsAdapter(producer *rabbitmq_producer.Publisher) (*LeadEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &LeadEventsAdapter{producer: producer}, nil
}

type leadCreatedEvent struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	Settlement string     `json:"settlement"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email,omitempty"`
	HouseID    *uuid.UUID `json:"houseId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (a *LeadEventsAdapter) LeadCreated(ctx context.Context, lead *domain.Lead) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "LeadEventsAdapter",
		"routing_key": constants.LeadCreatedRoutingKey,
		"lead_id":     lead.ID.String(),
		"kind":        lead.Kind,
	})

	event := leadCreatedEvent{
		ID:         lead.ID,
		Kind:       string(lead.Kind),
		Settlement: string(lead.Settlement),
		Name:       lead.Name,
		Phone:      lead.Phone,
		Email:      lead.Email,
		HouseID:    lead.HouseID,
		CreatedAt:  lead.CreatedAt,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal lead event to JSON", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal lead event %s: %w", lead.ID, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         eventJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = a.producer.Publish(publishCtx, constants.LeadCreatedRoutingKey, msg)
	if err != nil {
		adapterLogger.Error("Failed to publish lead event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish lead event %s: %w", lead.ID, err)
	}

	adapterLogger.Info("Published lead event", nil)
	return nil
}
