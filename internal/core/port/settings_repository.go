package port

import (
	"context"
	"settlements-service/internal/core/domain"
)

// SettingsRepositoryPort — настройки сайта и SEO-настройки страниц.
type SettingsRepositoryPort interface {
	GetSite(ctx context.Context, settlement domain.Settlement) (*domain.SiteSettings, error)
	UpdateSite(ctx context.Context, settings *domain.SiteSettings) error

	GetPage(ctx context.Context, settlement domain.Settlement, path string) (*domain.PageSettings, error)
	ListPages(ctx context.Context, settlement domain.Settlement) ([]domain.PageSettings, error)
	UpsertPage(ctx context.Context, page *domain.PageSettings) error
}
