package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestStatus — статус обращения в админке.
type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "new"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusClosed     RequestStatus = "closed"
)

func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case RequestStatusNew, RequestStatusInProgress, RequestStatusClosed:
		return RequestStatus(s), nil
	}
	return "", NewValidationError("status", "unknown request status: "+s)
}

// LeadKind различает три таблицы обращений.
type LeadKind string

const (
	LeadContact LeadKind = "contact"
	LeadViewing LeadKind = "viewing"
	LeadSupport LeadKind = "support"
)

func ParseLeadKind(s string) (LeadKind, error) {
	switch LeadKind(s) {
	case LeadContact, LeadViewing, LeadSupport:
		return LeadKind(s), nil
	}
	return "", NewValidationError("kind", "unknown request kind: "+s)
}

// Lead — обращение пользователя: контактная форма, запись на просмотр
// или тикет в поддержку. HouseID заполняется только для просмотров.
type Lead struct {
	ID         uuid.UUID
	Kind       LeadKind
	Settlement Settlement
	Name       string
	Phone      string
	Email      string
	Message    string
	HouseID    *uuid.UUID
	Status     RequestStatus
	CreatedAt  time.Time
}

// ValidateLead проверяет поля формы до какого-либо обращения к хранилищу.
// Email обязателен только для поддержки, но если указан — должен быть валидным.
func ValidateLead(l Lead) error {
	if strings.TrimSpace(l.Name) == "" {
		return NewValidationError("name", "name is required")
	}
	if strings.TrimSpace(l.Phone) == "" {
		return NewValidationError("phone", "phone is required")
	}
	if l.Kind == LeadSupport && strings.TrimSpace(l.Email) == "" {
		return NewValidationError("email", "email is required")
	}
	if strings.TrimSpace(l.Email) != "" {
		if _, err := mail.ParseAddress(l.Email); err != nil {
			return NewValidationError("email", "invalid email address")
		}
	}
	if !l.Settlement.Valid() {
		return NewValidationError("settlement", "unknown settlement: "+string(l.Settlement))
	}
	return nil
}
