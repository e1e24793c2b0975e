package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
)

type FindPlotsUseCase struct {
	storage port.PlotStoragePort
}

func NewFindPlotsUseCase(storage port.PlotStoragePort) *FindPlotsUseCase {
	return &FindPlotsUseCase{storage: storage}
}

func (uc *FindPlotsUseCase) Execute(ctx context.Context, settlement domain.Settlement, filters domain.CatalogFilters) ([]domain.Plot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "FindPlots",
		"settlement": settlement,
	})

	plots, err := uc.storage.FindWithFilters(ctx, settlement, filters)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Plots found", port.Fields{"count": len(plots)})
	return plots, nil
}
