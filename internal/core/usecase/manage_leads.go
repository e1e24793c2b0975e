package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type ManageLeadsUseCase struct {
	storage port.LeadStoragePort
}

func NewManageLeadsUseCase(storage port.LeadStoragePort) *ManageLeadsUseCase {
	return &ManageLeadsUseCase{storage: storage}
}

// List возвращает обращения поселка; пустой status означает "все".
func (uc *ManageLeadsUseCase) List(ctx context.Context, settlement domain.Settlement, kind domain.LeadKind, status domain.RequestStatus) ([]domain.Lead, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ManageLeads.List",
		"settlement": settlement,
		"kind":       kind,
	})

	leads, err := uc.storage.List(ctx, settlement, kind, status)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Leads listed", port.Fields{"count": len(leads)})
	return leads, nil
}

func (uc *ManageLeadsUseCase) UpdateStatus(ctx context.Context, kind domain.LeadKind, id uuid.UUID, status domain.RequestStatus) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ManageLeads.UpdateStatus",
		"kind":     kind,
		"lead_id":  id.String(),
		"status":   status,
	})

	if _, err := domain.ParseRequestStatus(string(status)); err != nil {
		return err
	}

	if err := uc.storage.UpdateStatus(ctx, kind, id, status); err != nil {
		ucLogger.Error("Failed to update lead status", err, nil)
		return err
	}

	ucLogger.Info("Lead status updated", nil)
	return nil
}
