package domain

import (
	"time"

	"github.com/google/uuid"
)

// News — новость поселка. Публичная выдача отдает только опубликованные.
type News struct {
	ID          uuid.UUID
	Settlement  Settlement
	Title       string
	Body        string
	ImageURL    string
	IsPublished bool
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Document — файл на странице документов (уставы, протоколы, тарифы).
type Document struct {
	ID         uuid.UUID
	Settlement Settlement
	Title      string
	FileURL    string
	CreatedAt  time.Time
}

// GalleryImage — фотография в галерее поселка.
type GalleryImage struct {
	ID         uuid.UUID
	Settlement Settlement
	ImageURL   string
	Caption    string
	CreatedAt  time.Time
}
