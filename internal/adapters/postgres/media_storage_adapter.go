package postgres

import (
	"context"
	"fmt"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MediaStorageAdapter - документы и галерея в PostgreSQL.
type MediaStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewMediaStorageAdapter(pool *pgxpool.Pool) (*MediaStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &MediaStorageAdapter{pool: pool}, nil
}

func (s *MediaStorageAdapter) Documents(ctx context.Context, settlement domain.Settlement) ([]domain.Document, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":  "MediaStorageAdapter",
		"method":     "Documents",
		"settlement": settlement,
	})

	query := `SELECT id, settlement, title, file_url, created_at FROM documents
	          WHERE settlement = $1 ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, settlement)
	if err != nil {
		storageLogger.Error("Failed to query documents", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.Settlement, &d.Title, &d.FileURL, &d.CreatedAt); err != nil {
			storageLogger.Error("Failed to scan document row", err, nil)
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during documents iteration: %w", err)
	}

	return docs, nil
}

func (s *MediaStorageAdapter) AddDocument(ctx context.Context, doc *domain.Document) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":   "MediaStorageAdapter",
		"method":      "AddDocument",
		"document_id": doc.ID.String(),
	})

	query := `INSERT INTO documents (id, settlement, title, file_url, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, query, doc.ID, doc.Settlement, doc.Title, doc.FileURL, doc.CreatedAt)
	if err != nil {
		storageLogger.Error("Failed to add document", err, port.Fields{"query": query})
		return fmt.Errorf("failed to add document: %w", err)
	}

	storageLogger.Debug("Document added.", nil)
	return nil
}

func (s *MediaStorageAdapter) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":   "MediaStorageAdapter",
		"method":      "DeleteDocument",
		"document_id": id.String(),
	})

	cmdTag, err := s.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		storageLogger.Error("Failed to delete document", err, nil)
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (s *MediaStorageAdapter) GalleryImages(ctx context.Context, settlement domain.Settlement) ([]domain.GalleryImage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":  "MediaStorageAdapter",
		"method":     "GalleryImages",
		"settlement": settlement,
	})

	query := `SELECT id, settlement, image_url, caption, created_at FROM gallery_images
	          WHERE settlement = $1 ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, settlement)
	if err != nil {
		storageLogger.Error("Failed to query gallery images", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query gallery images: %w", err)
	}
	defer rows.Close()

	var images []domain.GalleryImage
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.Settlement, &img.ImageURL, &img.Caption, &img.CreatedAt); err != nil {
			storageLogger.Error("Failed to scan gallery image row", err, nil)
			return nil, fmt.Errorf("failed to scan gallery image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during gallery images iteration: %w", err)
	}

	return images, nil
}

func (s *MediaStorageAdapter) AddGalleryImage(ctx context.Context, img *domain.GalleryImage) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "MediaStorageAdapter",
		"method":    "AddGalleryImage",
		"image_id":  img.ID.String(),
	})

	query := `INSERT INTO gallery_images (id, settlement, image_url, caption, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, query, img.ID, img.Settlement, img.ImageURL, img.Caption, img.CreatedAt)
	if err != nil {
		storageLogger.Error("Failed to add gallery image", err, port.Fields{"query": query})
		return fmt.Errorf("failed to add gallery image: %w", err)
	}

	storageLogger.Debug("Gallery image added.", nil)
	return nil
}

func (s *MediaStorageAdapter) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "MediaStorageAdapter",
		"method":    "DeleteGalleryImage",
		"image_id":  id.String(),
	})

	cmdTag, err := s.pool.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		storageLogger.Error("Failed to delete gallery image", err, nil)
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
