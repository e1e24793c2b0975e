package port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

// ProfileRepositoryPort — профили пользователей (дополнение к внешнему identity).
type ProfileRepositoryPort interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	ListWithRoles(ctx context.Context) ([]domain.UserWithRoles, error)
}

// RoleRepositoryPort — роли пользователей. Используется и админкой,
// и middleware проверки прав.
type RoleRepositoryPort interface {
	RolesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Role, error)
	AssignRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
	RemoveRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
}
