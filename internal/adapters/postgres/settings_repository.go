package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository - настройки сайта и страниц в PostgreSQL.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) (*SettingsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SettingsRepository{pool: pool}, nil
}

func (r *SettingsRepository) GetSite(ctx context.Context, settlement domain.Settlement) (*domain.SiteSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "SettingsRepository",
		"method":     "GetSite",
		"settlement": settlement,
	})

	query := `SELECT settlement, phone, email, address, telegram, whatsapp, office_latitude, office_longitude, updated_at
	          FROM site_settings WHERE settlement = $1`

	var s domain.SiteSettings
	err := r.pool.QueryRow(ctx, query, settlement).Scan(
		&s.Settlement, &s.Phone, &s.Email, &s.Address, &s.Telegram, &s.Whatsapp,
		&s.OfficeLatitude, &s.OfficeLongitude, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Site settings not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find site settings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find site settings: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepository) UpdateSite(ctx context.Context, settings *domain.SiteSettings) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "SettingsRepository",
		"method":     "UpdateSite",
		"settlement": settings.Settlement,
	})

	query := `INSERT INTO site_settings (settlement, phone, email, address, telegram, whatsapp, office_latitude, office_longitude, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (settlement) DO UPDATE SET
	            phone = EXCLUDED.phone,
	            email = EXCLUDED.email,
	            address = EXCLUDED.address,
	            telegram = EXCLUDED.telegram,
	            whatsapp = EXCLUDED.whatsapp,
	            office_latitude = EXCLUDED.office_latitude,
	            office_longitude = EXCLUDED.office_longitude,
	            updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		settings.Settlement, settings.Phone, settings.Email, settings.Address, settings.Telegram, settings.Whatsapp,
		settings.OfficeLatitude, settings.OfficeLongitude, settings.UpdatedAt)
	if err != nil {
		repoLogger.Error("Failed to update site settings", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update site settings: %w", err)
	}

	repoLogger.Debug("Site settings saved.", nil)
	return nil
}

func (r *SettingsRepository) GetPage(ctx context.Context, settlement domain.Settlement, path string) (*domain.PageSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "SettingsRepository",
		"method":     "GetPage",
		"settlement": settlement,
		"path":       path,
	})

	query := `SELECT id, settlement, path, title, description, updated_at
	          FROM page_settings WHERE settlement = $1 AND path = $2`

	var p domain.PageSettings
	err := r.pool.QueryRow(ctx, query, settlement, path).Scan(
		&p.ID, &p.Settlement, &p.Path, &p.Title, &p.Description, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		repoLogger.Error("Failed to find page settings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find page settings: %w", err)
	}

	return &p, nil
}

func (r *SettingsRepository) ListPages(ctx context.Context, settlement domain.Settlement) ([]domain.PageSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "SettingsRepository",
		"method":     "ListPages",
		"settlement": settlement,
	})

	query := `SELECT id, settlement, path, title, description, updated_at
	          FROM page_settings WHERE settlement = $1 ORDER BY path`

	rows, err := r.pool.Query(ctx, query, settlement)
	if err != nil {
		repoLogger.Error("Failed to query page settings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query page settings: %w", err)
	}
	defer rows.Close()

	var pages []domain.PageSettings
	for rows.Next() {
		var p domain.PageSettings
		if err := rows.Scan(&p.ID, &p.Settlement, &p.Path, &p.Title, &p.Description, &p.UpdatedAt); err != nil {
			repoLogger.Error("Failed to scan page settings row", err, nil)
			return nil, fmt.Errorf("failed to scan page settings: %w", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during page settings iteration: %w", err)
	}

	return pages, nil
}

func (r *SettingsRepository) UpsertPage(ctx context.Context, page *domain.PageSettings) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "SettingsRepository",
		"method":     "UpsertPage",
		"settlement": page.Settlement,
		"path":       page.Path,
	})

	query := `INSERT INTO page_settings (id, settlement, path, title, description, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (settlement, path) DO UPDATE SET
	            title = EXCLUDED.title,
	            description = EXCLUDED.description,
	            updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		page.ID, page.Settlement, page.Path, page.Title, page.Description, page.UpdatedAt)
	if err != nil {
		repoLogger.Error("Failed to upsert page settings", err, port.Fields{"query": query})
		return fmt.Errorf("failed to upsert page settings: %w", err)
	}

	repoLogger.Debug("Page settings saved.", nil)
	return nil
}
