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

const plotColumns = `id, settlement, number, area_m2, price_rub, status, cadastral_number,
	latitude, longitude, created_at, updated_at`

// PlotStorageAdapter - реализация PlotStoragePort для PostgreSQL.
type PlotStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPlotStorageAdapter(pool *pgxpool.Pool) (*PlotStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PlotStorageAdapter{pool: pool}, nil
}

func scanPlot(row pgx.Row) (*domain.Plot, error) {
	var p domain.Plot
	err := row.Scan(&p.ID, &p.Settlement, &p.Number, &p.AreaM2, &p.PriceRub, &p.Status, &p.CadastralNumber,
		&p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PlotStorageAdapter) FindWithFilters(ctx context.Context, settlement domain.Settlement, filters domain.CatalogFilters) ([]domain.Plot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":  "PlotStorageAdapter",
		"method":     "FindWithFilters",
		"settlement": settlement,
	})

	whereClause, args := applyPlotFilters(settlement, filters)
	query := fmt.Sprintf(`SELECT %s FROM plots %s ORDER BY price_rub ASC`, plotColumns, whereClause)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		storageLogger.Error("Failed to query plots", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query plots: %w", err)
	}
	defer rows.Close()

	var plots []domain.Plot
	for rows.Next() {
		plot, err := scanPlot(rows)
		if err != nil {
			storageLogger.Error("Failed to scan plot row", err, nil)
			return nil, fmt.Errorf("failed to scan plot: %w", err)
		}
		plots = append(plots, *plot)
	}
	if err := rows.Err(); err != nil {
		storageLogger.Error("Error during plots iteration", err, nil)
		return nil, fmt.Errorf("error during plots iteration: %w", err)
	}

	storageLogger.Debug("Plots found.", port.Fields{"count": len(plots)})
	return plots, nil
}

func (s *PlotStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "PlotStorageAdapter",
		"method":    "GetByID",
		"plot_id":   id.String(),
	})

	query := fmt.Sprintf(`SELECT %s FROM plots WHERE id = $1`, plotColumns)

	plot, err := scanPlot(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			storageLogger.Warn("Plot not found.", nil)
			return nil, nil
		}
		storageLogger.Error("Failed to find plot", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find plot: %w", err)
	}

	return plot, nil
}

func (s *PlotStorageAdapter) Create(ctx context.Context, plot *domain.Plot) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "PlotStorageAdapter",
		"method":    "Create",
		"plot_id":   plot.ID.String(),
	})

	query := `INSERT INTO plots (id, settlement, number, area_m2, price_rub, status, cadastral_number,
	            latitude, longitude, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.pool.Exec(ctx, query,
		plot.ID, plot.Settlement, plot.Number, plot.AreaM2, plot.PriceRub, plot.Status, plot.CadastralNumber,
		plot.Latitude, plot.Longitude, plot.CreatedAt, plot.UpdatedAt)
	if err != nil {
		storageLogger.Error("Failed to create plot", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create plot: %w", err)
	}

	storageLogger.Debug("Plot created.", nil)
	return nil
}

func (s *PlotStorageAdapter) Update(ctx context.Context, plot *domain.Plot) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "PlotStorageAdapter",
		"method":    "Update",
		"plot_id":   plot.ID.String(),
	})

	query := `UPDATE plots SET number = $2, area_m2 = $3, price_rub = $4, status = $5, cadastral_number = $6,
	            latitude = $7, longitude = $8, updated_at = $9
	          WHERE id = $1`

	cmdTag, err := s.pool.Exec(ctx, query,
		plot.ID, plot.Number, plot.AreaM2, plot.PriceRub, plot.Status, plot.CadastralNumber,
		plot.Latitude, plot.Longitude, plot.UpdatedAt)
	if err != nil {
		storageLogger.Error("Failed to update plot", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update plot: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	storageLogger.Debug("Plot updated.", nil)
	return nil
}

func (s *PlotStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "PlotStorageAdapter",
		"method":    "Delete",
		"plot_id":   id.String(),
	})

	cmdTag, err := s.pool.Exec(ctx, `DELETE FROM plots WHERE id = $1`, id)
	if err != nil {
		storageLogger.Error("Failed to delete plot", err, nil)
		return fmt.Errorf("failed to delete plot: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// MapPoints возвращает участки с заполненными координатами; участок с номером
// подписывается как "Участок N".
func (s *PlotStorageAdapter) MapPoints(ctx context.Context, settlement domain.Settlement) ([]domain.MapPoint, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":  "PlotStorageAdapter",
		"method":     "MapPoints",
		"settlement": settlement,
	})

	query := `SELECT id, 'Участок ' || number, status, latitude, longitude FROM plots
	          WHERE settlement = $1 AND latitude IS NOT NULL AND longitude IS NOT NULL`

	rows, err := s.pool.Query(ctx, query, settlement)
	if err != nil {
		storageLogger.Error("Failed to query plot map points", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query plot map points: %w", err)
	}
	defer rows.Close()

	var points []domain.MapPoint
	for rows.Next() {
		p := domain.MapPoint{Kind: "plot"}
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
