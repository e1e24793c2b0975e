package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPlotDetailsUseCase struct {
	storage port.PlotStoragePort
}

func NewGetPlotDetailsUseCase(storage port.PlotStoragePort) *GetPlotDetailsUseCase {
	return &GetPlotDetailsUseCase{storage: storage}
}

func (uc *GetPlotDetailsUseCase) Execute(ctx context.Context, plotID uuid.UUID) (*domain.Plot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetPlotDetails",
		"plot_id":  plotID.String(),
	})

	plot, err := uc.storage.GetByID(ctx, plotID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if plot == nil {
		ucLogger.Warn("Plot not found", nil)
		return nil, domain.ErrNotFound
	}

	return plot, nil
}
