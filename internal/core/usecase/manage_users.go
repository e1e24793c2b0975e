package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type ManageUsersUseCase struct {
	profiles port.ProfileRepositoryPort
	roles    port.RoleRepositoryPort
}

func NewManageUsersUseCase(profiles port.ProfileRepositoryPort, roles port.RoleRepositoryPort) *ManageUsersUseCase {
	return &ManageUsersUseCase{profiles: profiles, roles: roles}
}

func (uc *ManageUsersUseCase) List(ctx context.Context) ([]domain.UserWithRoles, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	users, err := uc.profiles.ListWithRoles(ctx)
	if err != nil {
		logger.Error("Failed to list users", err, nil)
		return nil, err
	}
	return users, nil
}

func (uc *ManageUsersUseCase) AssignRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ManageUsers.AssignRole",
		"user_id":  userID.String(),
		"role":     role,
	})

	if _, err := domain.ParseRole(string(role)); err != nil {
		return err
	}

	if err := uc.roles.AssignRole(ctx, userID, role); err != nil {
		ucLogger.Error("Failed to assign role", err, nil)
		return err
	}

	ucLogger.Info("Role assigned", nil)
	return nil
}

func (uc *ManageUsersUseCase) RemoveRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ManageUsers.RemoveRole",
		"user_id":  userID.String(),
		"role":     role,
	})

	if _, err := domain.ParseRole(string(role)); err != nil {
		return err
	}

	if err := uc.roles.RemoveRole(ctx, userID, role); err != nil {
		ucLogger.Error("Failed to remove role", err, nil)
		return err
	}

	ucLogger.Info("Role removed", nil)
	return nil
}
