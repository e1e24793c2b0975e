package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BlockRepository - реализация BlockRepositoryPort для PostgreSQL.
type BlockRepository struct {
	pool *pgxpool.Pool
}

func NewBlockRepository(pool *pgxpool.Pool) (*BlockRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &BlockRepository{pool: pool}, nil
}

// scanBlock собирает доменный блок из строки. Содержимое хранится как JSONB
// и декодируется в вариант, соответствующий типу блока.
func scanBlock(row pgx.Row) (*domain.HomepageBlock, error) {
	var (
		b         domain.HomepageBlock
		blockType string
		rawContent []byte
	)
	err := row.Scan(&b.ID, &b.Settlement, &blockType, &b.SortOrder, &b.IsEnabled, &rawContent, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	b.BlockType = domain.BlockType(blockType)
	content, err := domain.DecodeContent(b.BlockType, rawContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode content of block %s: %w", b.ID, err)
	}
	b.Content = content
	return &b, nil
}

// ListBySettlement возвращает блоки в порядке рендеринга. Вторичная
// сортировка по id делает порядок детерминированным даже при
// (теоретическом) дубликате sort_order.
func (r *BlockRepository) ListBySettlement(ctx context.Context, settlement domain.Settlement) ([]domain.HomepageBlock, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "BlockRepository",
		"method":     "ListBySettlement",
		"settlement": settlement,
	})

	query := `SELECT id, settlement, block_type, sort_order, is_enabled, content, created_at, updated_at
	          FROM homepage_blocks WHERE settlement = $1 ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query, settlement)
	if err != nil {
		repoLogger.Error("Failed to query blocks", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query blocks: %w", err)
	}
	defer rows.Close()

	var blocks []domain.HomepageBlock
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			repoLogger.Error("Failed to scan block row", err, nil)
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		blocks = append(blocks, *block)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during blocks iteration", err, nil)
		return nil, fmt.Errorf("error during blocks iteration: %w", err)
	}

	return blocks, nil
}

// GetByID возвращает (nil, nil), если блок не найден.
func (r *BlockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HomepageBlock, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlockRepository",
		"method":    "GetByID",
		"block_id":  id.String(),
	})

	query := `SELECT id, settlement, block_type, sort_order, is_enabled, content, created_at, updated_at
	          FROM homepage_blocks WHERE id = $1`

	block, err := scanBlock(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Block not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find block", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find block: %w", err)
	}

	return block, nil
}

func (r *BlockRepository) Create(ctx context.Context, block *domain.HomepageBlock) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlockRepository",
		"method":    "Create",
		"block_id":  block.ID.String(),
	})

	content, err := json.Marshal(block.Content)
	if err != nil {
		return fmt.Errorf("failed to marshal block content: %w", err)
	}

	query := `INSERT INTO homepage_blocks (id, settlement, block_type, sort_order, is_enabled, content, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.pool.Exec(ctx, query,
		block.ID, block.Settlement, block.BlockType, block.SortOrder, block.IsEnabled, content, block.CreatedAt, block.UpdatedAt)
	if err != nil {
		repoLogger.Error("Failed to create block", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create block: %w", err)
	}

	repoLogger.Debug("Block created.", nil)
	return nil
}

func (r *BlockRepository) UpdateContent(ctx context.Context, id uuid.UUID, content domain.BlockContent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlockRepository",
		"method":    "UpdateContent",
		"block_id":  id.String(),
	})

	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal block content: %w", err)
	}

	query := `UPDATE homepage_blocks SET content = $2, updated_at = now() WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id, raw)
	if err != nil {
		repoLogger.Error("Failed to update block content", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update block content: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	repoLogger.Debug("Block content updated.", nil)
	return nil
}

func (r *BlockRepository) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlockRepository",
		"method":    "SetEnabled",
		"block_id":  id.String(),
	})

	query := `UPDATE homepage_blocks SET is_enabled = $2, updated_at = now() WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id, enabled)
	if err != nil {
		repoLogger.Error("Failed to toggle block", err, port.Fields{"query": query})
		return fmt.Errorf("failed to toggle block: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *BlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlockRepository",
		"method":    "Delete",
		"block_id":  id.String(),
	})

	query := `DELETE FROM homepage_blocks WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		repoLogger.Error("Failed to delete block", err, port.Fields{"query": query})
		return fmt.Errorf("failed to delete block: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Attempted to delete a block that did not exist.", nil)
		return domain.ErrNotFound
	}

	repoLogger.Debug("Block deleted.", nil)
	return nil
}

// SwapOrder меняет местами sort_order двух блоков в одной транзакции.
// Обмен идет через временное отрицательное значение, чтобы не споткнуться
// об уникальный индекс (sort_order всегда неотрицателен). При любой ошибке
// транзакция откатывается и обе строки остаются неизменными.
func (r *BlockRepository) SwapOrder(ctx context.Context, first, second domain.HomepageBlock) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlockRepository",
		"method":    "SwapOrder",
		"first_id":  first.ID.String(),
		"second_id": second.ID.String(),
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	steps := []struct {
		id    uuid.UUID
		order int
	}{
		{first.ID, -1},
		{second.ID, first.SortOrder},
		{first.ID, second.SortOrder},
	}

	for _, step := range steps {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE homepage_blocks SET sort_order = $2, updated_at = now() WHERE id = $1`,
			step.id, step.order)
		if err != nil {
			repoLogger.Error("Swap step failed, rolling back", err, nil)
			return fmt.Errorf("failed to swap block order: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			repoLogger.Warn("Block disappeared during swap, rolling back.", nil)
			return domain.ErrNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		repoLogger.Error("Failed to commit swap transaction", err, nil)
		return fmt.Errorf("failed to commit swap transaction: %w", err)
	}

	repoLogger.Debug("Block order swapped.", nil)
	return nil
}
