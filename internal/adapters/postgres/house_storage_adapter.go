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

const houseColumns = `id, settlement, title, description, price_rub, area_m2, plot_area_m2,
	rooms, floors, status, images, latitude, longitude, is_published, created_at, updated_at`

// HouseStorageAdapter - реализация HouseStoragePort для PostgreSQL.
type HouseStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewHouseStorageAdapter(pool *pgxpool.Pool) (*HouseStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &HouseStorageAdapter{pool: pool}, nil
}

func scanHouse(row pgx.Row) (*domain.House, error) {
	var h domain.House
	err := row.Scan(&h.ID, &h.Settlement, &h.Title, &h.Description, &h.PriceRub, &h.AreaM2, &h.PlotAreaM2,
		&h.Rooms, &h.Floors, &h.Status, &h.Images, &h.Latitude, &h.Longitude, &h.IsPublished, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *HouseStorageAdapter) FindWithFilters(ctx context.Context, settlement domain.Settlement, filters domain.CatalogFilters) ([]domain.House, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":  "HouseStorageAdapter",
		"method":     "FindWithFilters",
		"settlement": settlement,
	})

	whereClause, args := applyHouseFilters(settlement, filters)
	query := fmt.Sprintf(`SELECT %s FROM houses %s ORDER BY price_rub ASC`, houseColumns, whereClause)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		storageLogger.Error("Failed to query houses", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query houses: %w", err)
	}
	defer rows.Close()

	var houses []domain.House
	for rows.Next() {
		house, err := scanHouse(rows)
		if err != nil {
			storageLogger.Error("Failed to scan house row", err, nil)
			return nil, fmt.Errorf("failed to scan house: %w", err)
		}
		houses = append(houses, *house)
	}
	if err := rows.Err(); err != nil {
		storageLogger.Error("Error during houses iteration", err, nil)
		return nil, fmt.Errorf("error during houses iteration: %w", err)
	}

	storageLogger.Debug("Houses found.", port.Fields{"count": len(houses)})
	return houses, nil
}

func (s *HouseStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.House, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "HouseStorageAdapter",
		"method":    "GetByID",
		"house_id":  id.String(),
	})

	query := fmt.Sprintf(`SELECT %s FROM houses WHERE id = $1`, houseColumns)

	house, err := scanHouse(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			storageLogger.Warn("House not found.", nil)
			return nil, nil
		}
		storageLogger.Error("Failed to find house", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find house: %w", err)
	}

	return house, nil
}

func (s *HouseStorageAdapter) Create(ctx context.Context, house *domain.House) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "HouseStorageAdapter",
		"method":    "Create",
		"house_id":  house.ID.String(),
	})

	query := `INSERT INTO houses (id, settlement, title, description, price_rub, area_m2, plot_area_m2,
	            rooms, floors, status, images, latitude, longitude, is_published, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := s.pool.Exec(ctx, query,
		house.ID, house.Settlement, house.Title, house.Description, house.PriceRub, house.AreaM2, house.PlotAreaM2,
		house.Rooms, house.Floors, house.Status, house.Images, house.Latitude, house.Longitude,
		house.IsPublished, house.CreatedAt, house.UpdatedAt)
	if err != nil {
		storageLogger.Error("Failed to create house", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create house: %w", err)
	}

	storageLogger.Debug("House created.", nil)
	return nil
}

func (s *HouseStorageAdapter) Update(ctx context.Context, house *domain.House) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "HouseStorageAdapter",
		"method":    "Update",
		"house_id":  house.ID.String(),
	})

	query := `UPDATE houses SET title = $2, description = $3, price_rub = $4, area_m2 = $5, plot_area_m2 = $6,
	            rooms = $7, floors = $8, status = $9, images = $10, latitude = $11, longitude = $12,
	            is_published = $13, updated_at = $14
	          WHERE id = $1`

	cmdTag, err := s.pool.Exec(ctx, query,
		house.ID, house.Title, house.Description, house.PriceRub, house.AreaM2, house.PlotAreaM2,
		house.Rooms, house.Floors, house.Status, house.Images, house.Latitude, house.Longitude,
		house.IsPublished, house.UpdatedAt)
	if err != nil {
		storageLogger.Error("Failed to update house", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update house: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	storageLogger.Debug("House updated.", nil)
	return nil
}

func (s *HouseStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "HouseStorageAdapter",
		"method":    "Delete",
		"house_id":  id.String(),
	})

	cmdTag, err := s.pool.Exec(ctx, `DELETE FROM houses WHERE id = $1`, id)
	if err != nil {
		storageLogger.Error("Failed to delete house", err, nil)
		return fmt.Errorf("failed to delete house: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// MapPoints возвращает опубликованные дома с заполненными координатами.
// Geohash вычисляется на лету, в таблице он не хранится.
func (s *HouseStorageAdapter) MapPoints(ctx context.Context, settlement domain.Settlement) ([]domain.MapPoint, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":  "HouseStorageAdapter",
		"method":     "MapPoints",
		"settlement": settlement,
	})

	query := `SELECT id, title, status, latitude, longitude FROM houses
	          WHERE settlement = $1 AND is_published = true
	            AND latitude IS NOT NULL AND longitude IS NOT NULL`

	rows, err := s.pool.Query(ctx, query, settlement)
	if err != nil {
		storageLogger.Error("Failed to query house map points", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query house map points: %w", err)
	}
	defer rows.Close()

	var points []domain.MapPoint
	for rows.Next() {
		p := domain.MapPoint{Kind: "house"}
		if err := rows.Scan(&p.ID, &p.Title, &p.Status, &p.Latitude, &p.Longitude); err != nil {
			storageLogger.Error("Failed to scan map point row", err, nil)
			return nil, fmt.Errorf("failed to scan map point: %w", err)
		}
		p.Geohash = encodeGeohash(p.Latitude, p.Longitude)
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during map points iteration: %w", err)
	}

	return points, nil
}
