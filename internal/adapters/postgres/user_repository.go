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

// ProfileRepository - профили пользователей в PostgreSQL.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ProfileRepository{pool: pool}, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ProfileRepository",
		"method":    "GetByUserID",
		"user_id":   userID.String(),
	})

	query := `SELECT user_id, email, full_name, phone, created_at, updated_at FROM profiles WHERE user_id = $1`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.Email, &p.FullName, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Profile not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find profile", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ProfileRepository",
		"method":    "Upsert",
		"user_id":   profile.UserID.String(),
	})

	query := `INSERT INTO profiles (user_id, email, full_name, phone, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, now(), $5)
	          ON CONFLICT (user_id) DO UPDATE SET
	            email = EXCLUDED.email,
	            full_name = EXCLUDED.full_name,
	            phone = EXCLUDED.phone,
	            updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query, profile.UserID, profile.Email, profile.FullName, profile.Phone, profile.UpdatedAt)
	if err != nil {
		repoLogger.Error("Failed to upsert profile", err, port.Fields{"query": query})
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	repoLogger.Debug("Profile saved.", nil)
	return nil
}

// ListWithRoles собирает пользователей вместе с ролями одним запросом.
// array_remove выбрасывает NULL, который LEFT JOIN дает пользователям без ролей.
func (r *ProfileRepository) ListWithRoles(ctx context.Context) ([]domain.UserWithRoles, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ProfileRepository",
		"method":    "ListWithRoles",
	})

	query := `SELECT p.user_id, p.email, p.full_name, p.phone, p.created_at, p.updated_at,
	                 array_remove(array_agg(r.role), NULL)
	          FROM profiles p
	          LEFT JOIN user_roles r ON r.user_id = p.user_id
	          GROUP BY p.user_id, p.email, p.full_name, p.phone, p.created_at, p.updated_at
	          ORDER BY p.created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query users", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.UserWithRoles
	for rows.Next() {
		var (
			u     domain.UserWithRoles
			roles []string
		)
		err := rows.Scan(&u.Profile.UserID, &u.Profile.Email, &u.Profile.FullName, &u.Profile.Phone,
			&u.Profile.CreatedAt, &u.Profile.UpdatedAt, &roles)
		if err != nil {
			repoLogger.Error("Failed to scan user row", err, nil)
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		for _, role := range roles {
			u.Roles = append(u.Roles, domain.Role(role))
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during users iteration: %w", err)
	}

	return users, nil
}

// RoleRepository - роли пользователей в PostgreSQL.
type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) (*RoleRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &RoleRepository{pool: pool}, nil
}

func (r *RoleRepository) RolesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Role, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "RoleRepository",
		"method":    "RolesByUserID",
		"user_id":   userID.String(),
	})

	query := `SELECT role FROM user_roles WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		repoLogger.Error("Failed to query roles", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during roles iteration: %w", err)
	}

	return roles, nil
}

// AssignRole идемпотентен: повторная выдача роли не считается ошибкой.
func (r *RoleRepository) AssignRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "RoleRepository",
		"method":    "AssignRole",
		"user_id":   userID.String(),
		"role":      role,
	})

	query := `INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	_, err := r.pool.Exec(ctx, query, userID, role)
	if err != nil {
		repoLogger.Error("Failed to assign role", err, port.Fields{"query": query})
		return fmt.Errorf("failed to assign role: %w", err)
	}

	repoLogger.Debug("Role assigned.", nil)
	return nil
}

func (r *RoleRepository) RemoveRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "RoleRepository",
		"method":    "RemoveRole",
		"user_id":   userID.String(),
		"role":      role,
	})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1 AND role = $2`, userID, role)
	if err != nil {
		repoLogger.Error("Failed to remove role", err, nil)
		return fmt.Errorf("failed to remove role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Role was not assigned.", nil)
		return domain.ErrNotFound
	}

	return nil
}
