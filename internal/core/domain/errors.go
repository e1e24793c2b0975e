package domain

import (
	"errors"
	"fmt"
)

// Ошибки-переменные, которые могут быть возвращены из Use Cases.
// REST-слой переводит их в соответствующие HTTP-статусы.
var (
	ErrNotFound     = errors.New("entity not found")
	ErrForbidden    = errors.New("operation is forbidden for this user")
	ErrAuthRequired = errors.New("authentication required")
)

// ValidationError — ошибка проверки входных данных. Такая ошибка
// никогда не доходит до хранилища: запрос отклоняется до записи.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError проверяет, является ли ошибка (или её причина) ошибкой валидации.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
