package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetNewsFeedUseCase interface {
	Execute(ctx context.Context, settlement domain.Settlement, limit, offset int) ([]domain.News, error)
}

type GetNewsDetailsUseCase interface {
	Execute(ctx context.Context, newsID uuid.UUID) (*domain.News, error)
}

type GetDocumentsUseCase interface {
	Execute(ctx context.Context, settlement domain.Settlement) ([]domain.Document, error)
}

type GetGalleryUseCase interface {
	Execute(ctx context.Context, settlement domain.Settlement) ([]domain.GalleryImage, error)
}

type GetSiteSettingsUseCase interface {
	Execute(ctx context.Context, settlement domain.Settlement) (*domain.SiteSettings, error)
}

type GetPageSettingsUseCase interface {
	Execute(ctx context.Context, settlement domain.Settlement, path string) (*domain.PageSettings, error)
}
