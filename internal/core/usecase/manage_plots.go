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

type ManagePlotsUseCase struct {
	storage port.PlotStoragePort
}

func NewManagePlotsUseCase(storage port.PlotStoragePort) *ManagePlotsUseCase {
	return &ManagePlotsUseCase{storage: storage}
}

func validatePlot(p domain.Plot) error {
	if !p.Settlement.Valid() {
		return domain.NewValidationError("settlement", "unknown settlement: "+string(p.Settlement))
	}
	if strings.TrimSpace(p.Number) == "" {
		return domain.NewValidationError("number", "plot number is required")
	}
	if p.PriceRub < 0 {
		return domain.NewValidationError("priceRub", "price cannot be negative")
	}
	if p.AreaM2 <= 0 {
		return domain.NewValidationError("areaM2", "area must be positive")
	}
	if _, err := domain.ParseObjectStatus(string(p.Status)); err != nil {
		return err
	}
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return domain.NewValidationError("coordinates", "latitude and longitude must be set together")
	}
	return nil
}

func (uc *ManagePlotsUseCase) Create(ctx context.Context, plot domain.Plot) (*domain.Plot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ManagePlots.Create",
		"settlement": plot.Settlement,
	})

	if err := validatePlot(plot); err != nil {
		ucLogger.Warn("Plot rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	plot.ID = uuid.New()
	now := time.Now().UTC()
	plot.CreatedAt = now
	plot.UpdatedAt = now

	if err := uc.storage.Create(ctx, &plot); err != nil {
		ucLogger.Error("Failed to create plot", err, nil)
		return nil, err
	}

	ucLogger.Info("Plot created", port.Fields{"plot_id": plot.ID.String()})
	return &plot, nil
}

func (uc *ManagePlotsUseCase) Update(ctx context.Context, plot domain.Plot) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ManagePlots.Update",
		"plot_id":  plot.ID.String(),
	})

	if err := validatePlot(plot); err != nil {
		ucLogger.Warn("Plot rejected by validation", port.Fields{"error": err.Error()})
		return err
	}

	existing, err := uc.storage.GetByID(ctx, plot.ID)
	if err != nil {
		ucLogger.Error("Failed to load plot", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	plot.CreatedAt = existing.CreatedAt
	plot.UpdatedAt = time.Now().UTC()

	if err := uc.storage.Update(ctx, &plot); err != nil {
		ucLogger.Error("Failed to update plot", err, nil)
		return err
	}

	ucLogger.Info("Plot updated", nil)
	return nil
}

func (uc *ManagePlotsUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ManagePlots.Delete",
		"plot_id":  id.String(),
	})

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Failed to delete plot", err, nil)
		return err
	}

	ucLogger.Info("Plot deleted", nil)
	return nil
}
