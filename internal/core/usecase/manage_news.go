package usecase

import (
	"context"
	"strings"
	"time"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type ManageNewsUseCase struct {
	storage port.NewsStoragePort
}

func NewManageNewsUseCase(storage port.NewsStoragePort) *ManageNewsUseCase {
	return &ManageNewsUseCase{storage: storage}
}

func validateNews(n domain.News) error {
	if !n.Settlement.Valid() {
		return domain.NewValidationError("settlement", "unknown settlement: "+string(n.Settlement))
	}
	if strings.TrimSpace(n.Title) == "" {
		return domain.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(n.Body) == "" {
		return domain.NewValidationError("body", "body is required")
	}
	return nil
}

func (uc *ManageNewsUseCase) List(ctx context.Context, settlement domain.Settlement) ([]domain.News, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	news, err := uc.storage.AdminList(ctx, settlement)
	if err != nil {
		logger.Error("Failed to list news", err, port.Fields{"settlement": settlement})
		return nil, err
	}
	return news, nil
}

func (uc *ManageNewsUseCase) Create(ctx context.Context, news domain.News) (*domain.News, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ManageNews.Create",
		"settlement": news.Settlement,
	})

	if err := validateNews(news); err != nil {
		ucLogger.Warn("News rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	news.ID = uuid.New()
	now := time.Now().UTC()
	news.CreatedAt = now
	news.UpdatedAt = now
	if news.IsPublished && news.PublishedAt.IsZero() {
		news.PublishedAt = now
	}

	if err := uc.storage.Create(ctx, &news); err != nil {
		ucLogger.Error("Failed to create news", err, nil)
		return nil, err
	}

	ucLogger.Info("News created", port.Fields{"news_id": news.ID.String()})
	return &news, nil
}

func (uc *ManageNewsUseCase) Update(ctx context.Context, news domain.News) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ManageNews.Update",
		"news_id":  news.ID.String(),
	})

	if err := validateNews(news); err != nil {
		ucLogger.Warn("News rejected by validation", port.Fields{"error": err.Error()})
		return err
	}

	existing, err := uc.storage.GetByID(ctx, news.ID)
	if err != nil {
		ucLogger.Error("Failed to load news", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	news.CreatedAt = existing.CreatedAt
	news.UpdatedAt = time.Now().UTC()
	// Первая публикация фиксирует дату, повторные правки её не сдвигают.
	if news.IsPublished && existing.PublishedAt.IsZero() {
		news.PublishedAt = news.UpdatedAt
	} else if news.IsPublished {
		news.PublishedAt = existing.PublishedAt
	}

	if err := uc.storage.Update(ctx, &news); err != nil {
		ucLogger.Error("Failed to update news", err, nil)
		return err
	}

	ucLogger.Info("News updated", nil)
	return nil
}

func (uc *ManageNewsUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ManageNews.Delete",
		"news_id":  id.String(),
	})

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Failed to delete news", err, nil)
		return err
	}

	ucLogger.Info("News deleted", nil)
	return nil
}
