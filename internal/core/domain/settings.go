package domain

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettings — контактные данные и реквизиты поселка, одна строка на поселок.
type SiteSettings struct {
	Settlement      Settlement
	Phone           string
	Email           string
	Address         string
	Telegram        string
	Whatsapp        string
	OfficeLatitude  *float64
	OfficeLongitude *float64
	UpdatedAt       time.Time
}

// PageSettings — SEO-настройки конкретной страницы поселка.
type PageSettings struct {
	ID          uuid.UUID
	Settlement  Settlement
	Path        string
	Title       string
	Description string
	UpdatedAt   time.Time
}
