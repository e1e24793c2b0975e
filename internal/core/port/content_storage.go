package port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

// NewsStoragePort — новости поселков.
type NewsStoragePort interface {
	// PublicList возвращает только опубликованные новости, свежие первыми.
	PublicList(ctx context.Context, settlement domain.Settlement, limit, offset int) ([]domain.News, error)
	AdminList(ctx context.Context, settlement domain.Settlement) ([]domain.News, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error)
	Create(ctx context.Context, news *domain.News) error
	Update(ctx context.Context, news *domain.News) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MediaStoragePort — документы и галерея.
type MediaStoragePort interface {
	Documents(ctx context.Context, settlement domain.Settlement) ([]domain.Document, error)
	AddDocument(ctx context.Context, doc *domain.Document) error
	DeleteDocument(ctx context.Context, id uuid.UUID) error

	GalleryImages(ctx context.Context, settlement domain.Settlement) ([]domain.GalleryImage, error)
	AddGalleryImage(ctx context.Context, img *domain.GalleryImage) error
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error
}
