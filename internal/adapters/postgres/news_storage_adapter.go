package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const newsColumns = `id, settlement, title, body, image_url, is_published, published_at, created_at, updated_at`

// NewsStorageAdapter - реализация NewsStoragePort для PostgreSQL.
type NewsStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewNewsStorageAdapter(pool *pgxpool.Pool) (*NewsStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &NewsStorageAdapter{pool: pool}, nil
}

func scanNews(row pgx.Row) (*domain.News, error) {
	var n domain.News
	err := row.Scan(&n.ID, &n.Settlement, &n.Title, &n.Body, &n.ImageURL, &n.IsPublished, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NewsStorageAdapter) queryNews(ctx context.Context, query string, args ...interface{}) ([]domain.News, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	var items []domain.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news: %w", err)
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during news iteration: %w", err)
	}
	return items, nil
}

func (s *NewsStorageAdapter) PublicList(ctx context.Context, settlement domain.Settlement, limit, offset int) ([]domain.News, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":  "NewsStorageAdapter",
		"method":     "PublicList",
		"settlement": settlement,
	})

	query := fmt.Sprintf(`SELECT %s FROM news
	          WHERE settlement = $1 AND is_published = true
	          ORDER BY published_at DESC LIMIT $2 OFFSET $3`, newsColumns)

	items, err := s.queryNews(ctx, query, settlement, limit, offset)
	if err != nil {
		storageLogger.Error("Failed to list published news", err, nil)
		return nil, err
	}

	return items, nil
}

func (s *NewsStorageAdapter) AdminList(ctx context.Context, settlement domain.Settlement) ([]domain.News, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":  "NewsStorageAdapter",
		"method":     "AdminList",
		"settlement": settlement,
	})

	query := fmt.Sprintf(`SELECT %s FROM news WHERE settlement = $1 ORDER BY created_at DESC`, newsColumns)

	items, err := s.queryNews(ctx, query, settlement)
	if err != nil {
		storageLogger.Error("Failed to list news", err, nil)
		return nil, err
	}

	return items, nil
}

func (s *NewsStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "NewsStorageAdapter",
		"method":    "GetByID",
		"news_id":   id.String(),
	})

	query := fmt.Sprintf(`SELECT %s FROM news WHERE id = $1`, newsColumns)

	news, err := scanNews(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			storageLogger.Warn("News not found.", nil)
			return nil, nil
		}
		storageLogger.Error("Failed to find news", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find news: %w", err)
	}

	return news, nil
}

func (s *NewsStorageAdapter) Create(ctx context.Context, news *domain.News) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "NewsStorageAdapter",
		"method":    "Create",
		"news_id":   news.ID.String(),
	})

	query := `INSERT INTO news (id, settlement, title, body, image_url, is_published, published_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.pool.Exec(ctx, query,
		news.ID, news.Settlement, news.Title, news.Body, news.ImageURL, news.IsPublished, news.PublishedAt, news.CreatedAt, news.UpdatedAt)
	if err != nil {
		storageLogger.Error("Failed to create news", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create news: %w", err)
	}

	storageLogger.Debug("News created.", nil)
	return nil
}

func (s *NewsStorageAdapter) Update(ctx context.Context, news *domain.News) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "NewsStorageAdapter",
		"method":    "Update",
		"news_id":   news.ID.String(),
	})

	query := `UPDATE news SET title = $2, body = $3, image_url = $4, is_published = $5,
	            published_at = $6, updated_at = $7
	          WHERE id = $1`

	cmdTag, err := s.pool.Exec(ctx, query,
		news.ID, news.Title, news.Body, news.ImageURL, news.IsPublished, news.PublishedAt, news.UpdatedAt)
	if err != nil {
		storageLogger.Error("Failed to update news", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update news: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (s *NewsStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "NewsStorageAdapter",
		"method":    "Delete",
		"news_id":   id.String(),
	})

	cmdTag, err := s.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		storageLogger.Error("Failed to delete news", err, nil)
		return fmt.Errorf("failed to delete news: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
