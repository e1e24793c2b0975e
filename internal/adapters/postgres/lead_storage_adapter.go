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

// Каждый вид обращения живет в своей таблице с одинаковым набором колонок.
// house_id заполнен только в viewing_requests.
var leadTables = map[domain.LeadKind]string{
	domain.LeadContact: "contact_requests",
	domain.LeadViewing: "viewing_requests",
	domain.LeadSupport: "support_requests",
}

// LeadStorageAdapter - реализация LeadStoragePort для PostgreSQL.
type LeadStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewLeadStorageAdapter(pool *pgxpool.Pool) (*LeadStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &LeadStorageAdapter{pool: pool}, nil
}

func leadTable(kind domain.LeadKind) (string, error) {
	table, ok := leadTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown lead kind: %s", kind)
	}
	return table, nil
}

func (s *LeadStorageAdapter) Insert(ctx context.Context, lead *domain.Lead) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "LeadStorageAdapter",
		"method":    "Insert",
		"kind":      lead.Kind,
		"lead_id":   lead.ID.String(),
	})

	table, err := leadTable(lead.Kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, settlement, name, phone, email, message, house_id, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, table)

	_, err = s.pool.Exec(ctx, query,
		lead.ID, lead.Settlement, lead.Name, lead.Phone, lead.Email, lead.Message, lead.HouseID, lead.Status, lead.CreatedAt)
	if err != nil {
		storageLogger.Error("Failed to insert lead", err, port.Fields{"table": table})
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	storageLogger.Debug("Lead inserted.", nil)
	return nil
}

func (s *LeadStorageAdapter) List(ctx context.Context, settlement domain.Settlement, kind domain.LeadKind, status domain.RequestStatus) ([]domain.Lead, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component":  "LeadStorageAdapter",
		"method":     "List",
		"settlement": settlement,
		"kind":       kind,
	})

	table, err := leadTable(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, settlement, name, phone, email, message, house_id, status, created_at
	          FROM %s WHERE settlement = $1`, table)
	args := []interface{}{settlement}

	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		storageLogger.Error("Failed to query leads", err, port.Fields{"table": table})
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		l := domain.Lead{Kind: kind}
		err := rows.Scan(&l.ID, &l.Settlement, &l.Name, &l.Phone, &l.Email, &l.Message, &l.HouseID, &l.Status, &l.CreatedAt)
		if err != nil {
			storageLogger.Error("Failed to scan lead row", err, nil)
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during leads iteration: %w", err)
	}

	return leads, nil
}

func (s *LeadStorageAdapter) UpdateStatus(ctx context.Context, kind domain.LeadKind, id uuid.UUID, status domain.RequestStatus) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "LeadStorageAdapter",
		"method":    "UpdateStatus",
		"kind":      kind,
		"lead_id":   id.String(),
	})

	table, err := leadTable(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET status = $2 WHERE id = $1`, table)

	cmdTag, err := s.pool.Exec(ctx, query, id, status)
	if err != nil {
		storageLogger.Error("Failed to update lead status", err, port.Fields{"table": table})
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		storageLogger.Warn("Lead not found.", nil)
		return domain.ErrNotFound
	}

	return nil
}
