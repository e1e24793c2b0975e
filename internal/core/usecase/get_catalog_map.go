package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
)

type GetCatalogMapUseCase struct {
	houses port.HouseStoragePort
	plots  port.PlotStoragePort
}

func NewGetCatalogMapUseCase(houses port.HouseStoragePort, plots port.PlotStoragePort) *GetCatalogMapUseCase {
	return &GetCatalogMapUseCase{houses: houses, plots: plots}
}

// Execute собирает точки карты поселка: дома и участки с координатами.
func (uc *GetCatalogMapUseCase) Execute(ctx context.Context, settlement domain.Settlement) ([]domain.MapPoint, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetCatalogMap",
		"settlement": settlement,
	})

	housePoints, err := uc.houses.MapPoints(ctx, settlement)
	if err != nil {
		ucLogger.Error("Failed to load house map points", err, nil)
		return nil, err
	}

	plotPoints, err := uc.plots.MapPoints(ctx, settlement)
	if err != nil {
		ucLogger.Error("Failed to load plot map points", err, nil)
		return nil, err
	}

	points := make([]domain.MapPoint, 0, len(housePoints)+len(plotPoints))
	points = append(points, housePoints...)
	points = append(points, plotPoints...)

	ucLogger.Debug("Map points collected", port.Fields{"count": len(points)})
	return points, nil
}
