package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// FavoritesRepository - реализация FavoritesRepositoryPort для PostgreSQL.
type FavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewFavoritesRepository(pool *pgxpool.Pool) (*FavoritesRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FavoritesRepository{pool: pool}, nil
}

// Add идемпотентен: повторное добавление того же дома не считается ошибкой.
func (r *FavoritesRepository) Add(ctx context.Context, userID, houseID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FavoritesRepository",
		"method":    "Add",
		"user_id":   userID.String(),
		"house_id":  houseID.String(),
	})

	query := `INSERT INTO favorites (user_id, house_id, added_at) VALUES ($1, $2, now())`

	_, err := r.pool.Exec(ctx, query, userID, houseID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			repoLogger.Debug("House already in favorites.", nil)
			return nil
		}
		repoLogger.Error("Failed to add favorite", err, port.Fields{"query": query})
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	repoLogger.Debug("Favorite added.", nil)
	return nil
}

func (r *FavoritesRepository) Remove(ctx context.Context, userID, houseID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FavoritesRepository",
		"method":    "Remove",
		"user_id":   userID.String(),
		"house_id":  houseID.String(),
	})

	query := `DELETE FROM favorites WHERE user_id = $1 AND house_id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, userID, houseID)
	if err != nil {
		repoLogger.Error("Failed to remove favorite", err, port.Fields{"query": query})
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Favorite not found.", nil)
		return domain.ErrNotFound
	}

	return nil
}

func scanHouseCards(ctx context.Context, pool *pgxpool.Pool, query string, userID uuid.UUID) ([]domain.HouseCard, error) {
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query house cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.HouseCard
	for rows.Next() {
		var c domain.HouseCard
		if err := rows.Scan(&c.ID, &c.Title, &c.PriceRub, &c.Status, &c.Image, &c.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan house card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during house cards iteration: %w", err)
	}
	return cards, nil
}

// ListCards возвращает карточки избранных домов, недавно добавленные первыми.
// COALESCE по images прикрывает дома без фотографий.
func (r *FavoritesRepository) ListCards(ctx context.Context, userID uuid.UUID) ([]domain.HouseCard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FavoritesRepository",
		"method":    "ListCards",
		"user_id":   userID.String(),
	})

	query := `SELECT h.id, h.title, h.price_rub, h.status, COALESCE(h.images[1], ''), f.added_at
	          FROM favorites f
	          JOIN houses h ON h.id = f.house_id
	          WHERE f.user_id = $1
	          ORDER BY f.added_at DESC`

	cards, err := scanHouseCards(ctx, r.pool, query, userID)
	if err != nil {
		repoLogger.Error("Failed to list favorite cards", err, nil)
		return nil, err
	}

	repoLogger.Debug("Favorite cards listed.", port.Fields{"count": len(cards)})
	return cards, nil
}

func (r *FavoritesRepository) ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FavoritesRepository",
		"method":    "ListIDs",
		"user_id":   userID.String(),
	})

	query := `SELECT house_id FROM favorites WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		repoLogger.Error("Failed to list favorite ids", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list favorite ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during favorite ids iteration: %w", err)
	}

	return ids, nil
}

// ViewedRepository - история просмотренных домов.
type ViewedRepository struct {
	pool *pgxpool.Pool
}

func NewViewedRepository(pool *pgxpool.Pool) (*ViewedRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ViewedRepository{pool: pool}, nil
}

// MarkViewed обновляет отметку времени при повторном просмотре, чтобы дом
// поднимался наверх истории.
func (r *ViewedRepository) MarkViewed(ctx context.Context, userID, houseID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ViewedRepository",
		"method":    "MarkViewed",
		"user_id":   userID.String(),
		"house_id":  houseID.String(),
	})

	query := `INSERT INTO viewed_houses (user_id, house_id, viewed_at) VALUES ($1, $2, now())
	          ON CONFLICT (user_id, house_id) DO UPDATE SET viewed_at = now()`

	_, err := r.pool.Exec(ctx, query, userID, houseID)
	if err != nil {
		repoLogger.Error("Failed to mark house as viewed", err, port.Fields{"query": query})
		return fmt.Errorf("failed to mark house as viewed: %w", err)
	}

	return nil
}

func (r *ViewedRepository) ListCards(ctx context.Context, userID uuid.UUID) ([]domain.HouseCard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ViewedRepository",
		"method":    "ListCards",
		"user_id":   userID.String(),
	})

	query := `SELECT h.id, h.title, h.price_rub, h.status, COALESCE(h.images[1], ''), v.viewed_at
	          FROM viewed_houses v
	          JOIN houses h ON h.id = v.house_id
	          WHERE v.user_id = $1
	          ORDER BY v.viewed_at DESC`

	cards, err := scanHouseCards(ctx, r.pool, query, userID)
	if err != nil {
		repoLogger.Error("Failed to list viewed cards", err, nil)
		return nil, err
	}

	return cards, nil
}
