package usecase

import (
	"context"
	"strings"
	"time"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type GetProfileUseCase struct {
	repo port.ProfileRepositoryPort
}

func NewGetProfileUseCase(repo port.ProfileRepositoryPort) *GetProfileUseCase {
	return &GetProfileUseCase{repo: repo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetProfile",
		"user_id":  userID.String(),
	})

	profile, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if profile == nil {
		ucLogger.Warn("Profile not found", nil)
		return nil, domain.ErrNotFound
	}

	return profile, nil
}

type UpdateProfileUseCase struct {
	repo port.ProfileRepositoryPort
}

func NewUpdateProfileUseCase(repo port.ProfileRepositoryPort) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{repo: repo}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, profile domain.Profile) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateProfile",
		"user_id":  profile.UserID.String(),
	})

	if strings.TrimSpace(profile.FullName) == "" {
		return domain.NewValidationError("fullName", "full name is required")
	}

	profile.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Upsert(ctx, &profile); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Profile updated", nil)
	return nil
}
