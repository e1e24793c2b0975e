package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

// Публичные read-only use cases для контентных страниц: новости,
// документы, галерея, настройки.

type GetNewsFeedUseCase struct {
	storage port.NewsStoragePort
}

func NewGetNewsFeedUseCase(storage port.NewsStoragePort) *GetNewsFeedUseCase {
	return &GetNewsFeedUseCase{storage: storage}
}

func (uc *GetNewsFeedUseCase) Execute(ctx context.Context, settlement domain.Settlement, limit, offset int) ([]domain.News, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetNewsFeed",
		"settlement": settlement,
	})

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	news, err := uc.storage.PublicList(ctx, settlement, limit, offset)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	return news, nil
}

type GetNewsDetailsUseCase struct {
	storage port.NewsStoragePort
}

func NewGetNewsDetailsUseCase(storage port.NewsStoragePort) *GetNewsDetailsUseCase {
	return &GetNewsDetailsUseCase{storage: storage}
}

func (uc *GetNewsDetailsUseCase) Execute(ctx context.Context, newsID uuid.UUID) (*domain.News, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetNewsDetails",
		"news_id":  newsID.String(),
	})

	news, err := uc.storage.GetByID(ctx, newsID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	// Неопубликованная новость для публичной страницы не существует.
	if news == nil || !news.IsPublished {
		ucLogger.Warn("News not found or not published", nil)
		return nil, domain.ErrNotFound
	}

	return news, nil
}

type GetDocumentsUseCase struct {
	storage port.MediaStoragePort
}

func NewGetDocumentsUseCase(storage port.MediaStoragePort) *GetDocumentsUseCase {
	return &GetDocumentsUseCase{storage: storage}
}

func (uc *GetDocumentsUseCase) Execute(ctx context.Context, settlement domain.Settlement) ([]domain.Document, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	docs, err := uc.storage.Documents(ctx, settlement)
	if err != nil {
		logger.Error("Failed to load documents", err, port.Fields{"settlement": settlement})
		return nil, err
	}
	return docs, nil
}

type GetGalleryUseCase struct {
	storage port.MediaStoragePort
}

func NewGetGalleryUseCase(storage port.MediaStoragePort) *GetGalleryUseCase {
	return &GetGalleryUseCase{storage: storage}
}

func (uc *GetGalleryUseCase) Execute(ctx context.Context, settlement domain.Settlement) ([]domain.GalleryImage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	images, err := uc.storage.GalleryImages(ctx, settlement)
	if err != nil {
		logger.Error("Failed to load gallery", err, port.Fields{"settlement": settlement})
		return nil, err
	}
	return images, nil
}

type GetSiteSettingsUseCase struct {
	repo port.SettingsRepositoryPort
}

func NewGetSiteSettingsUseCase(repo port.SettingsRepositoryPort) *GetSiteSettingsUseCase {
	return &GetSiteSettingsUseCase{repo: repo}
}

func (uc *GetSiteSettingsUseCase) Execute(ctx context.Context, settlement domain.Settlement) (*domain.SiteSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	settings, err := uc.repo.GetSite(ctx, settlement)
	if err != nil {
		logger.Error("Failed to load site settings", err, port.Fields{"settlement": settlement})
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return settings, nil
}

type GetPageSettingsUseCase struct {
	repo port.SettingsRepositoryPort
}

func NewGetPageSettingsUseCase(repo port.SettingsRepositoryPort) *GetPageSettingsUseCase {
	return &GetPageSettingsUseCase{repo: repo}
}

func (uc *GetPageSettingsUseCase) Execute(ctx context.Context, settlement domain.Settlement, path string) (*domain.PageSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	page, err := uc.repo.GetPage(ctx, settlement, path)
	if err != nil {
		logger.Error("Failed to load page settings", err, port.Fields{"settlement": settlement, "path": path})
		return nil, err
	}
	if page == nil {
		return nil, domain.ErrNotFound
	}
	return page, nil
}
