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

type ManageSettingsUseCase struct {
	repo port.SettingsRepositoryPort
}

func NewManageSettingsUseCase(repo port.SettingsRepositoryPort) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{repo: repo}
}

func (uc *ManageSettingsUseCase) UpdateSite(ctx context.Context, settings domain.SiteSettings) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ManageSettings.UpdateSite",
		"settlement": settings.Settlement,
	})

	if !settings.Settlement.Valid() {
		return domain.NewValidationError("settlement", "unknown settlement: "+string(settings.Settlement))
	}
	if (settings.OfficeLatitude == nil) != (settings.OfficeLongitude == nil) {
		return domain.NewValidationError("coordinates", "latitude and longitude must be set together")
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := uc.repo.UpdateSite(ctx, &settings); err != nil {
		ucLogger.Error("Failed to update site settings", err, nil)
		return err
	}

	ucLogger.Info("Site settings updated", nil)
	return nil
}

func (uc *ManageSettingsUseCase) ListPages(ctx context.Context, settlement domain.Settlement) ([]domain.PageSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	pages, err := uc.repo.ListPages(ctx, settlement)
	if err != nil {
		logger.Error("Failed to list page settings", err, port.Fields{"settlement": settlement})
		return nil, err
	}
	return pages, nil
}

func (uc *ManageSettingsUseCase) UpsertPage(ctx context.Context, page domain.PageSettings) (*domain.PageSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ManageSettings.UpsertPage",
		"settlement": page.Settlement,
		"path":       page.Path,
	})

	if !page.Settlement.Valid() {
		return nil, domain.NewValidationError("settlement", "unknown settlement: "+string(page.Settlement))
	}
	if !strings.HasPrefix(page.Path, "/") {
		return nil, domain.NewValidationError("path", "path must start with '/'")
	}

	if page.ID == uuid.Nil {
		page.ID = uuid.New()
	}
	page.UpdatedAt = time.Now().UTC()

	if err := uc.repo.UpsertPage(ctx, &page); err != nil {
		ucLogger.Error("Failed to upsert page settings", err, nil)
		return nil, err
	}

	ucLogger.Info("Page settings saved", nil)
	return &page, nil
}
