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

type ManageHousesUseCase struct {
	storage port.HouseStoragePort
}

func NewManageHousesUseCase(storage port.HouseStoragePort) *ManageHousesUseCase {
	return &ManageHousesUseCase{storage: storage}
}

func validateHouse(h domain.House) error {
	if !h.Settlement.Valid() {
		return domain.NewValidationError("settlement", "unknown settlement: "+string(h.Settlement))
	}
	if strings.TrimSpace(h.Title) == "" {
		return domain.NewValidationError("title", "title is required")
	}
	if h.PriceRub < 0 {
		return domain.NewValidationError("priceRub", "price cannot be negative")
	}
	if h.AreaM2 <= 0 {
		return domain.NewValidationError("areaM2", "area must be positive")
	}
	if _, err := domain.ParseObjectStatus(string(h.Status)); err != nil {
		return err
	}
	// Координаты задаются парой: одна половина без другой бесполезна для карты.
	if (h.Latitude == nil) != (h.Longitude == nil) {
		return domain.NewValidationError("coordinates", "latitude and longitude must be set together")
	}
	return nil
}

func (uc *ManageHousesUseCase) Create(ctx context.Context, house domain.House) (*domain.House, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ManageHouses.Create",
		"settlement": house.Settlement,
	})

	if err := validateHouse(house); err != nil {
		ucLogger.Warn("House rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	house.ID = uuid.New()
	now := time.Now().UTC()
	house.CreatedAt = now
	house.UpdatedAt = now

	if err := uc.storage.Create(ctx, &house); err != nil {
		ucLogger.Error("Failed to create house", err, nil)
		return nil, err
	}

	ucLogger.Info("House created", port.Fields{"house_id": house.ID.String()})
	return &house, nil
}

// Update заменяет запись целиком (полная замена, не partial patch).
func (uc *ManageHousesUseCase) Update(ctx context.Context, house domain.House) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ManageHouses.Update",
		"house_id": house.ID.String(),
	})

	if err := validateHouse(house); err != nil {
		ucLogger.Warn("House rejected by validation", port.Fields{"error": err.Error()})
		return err
	}

	existing, err := uc.storage.GetByID(ctx, house.ID)
	if err != nil {
		ucLogger.Error("Failed to load house", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	house.CreatedAt = existing.CreatedAt
	house.UpdatedAt = time.Now().UTC()

	if err := uc.storage.Update(ctx, &house); err != nil {
		ucLogger.Error("Failed to update house", err, nil)
		return err
	}

	ucLogger.Info("House updated", nil)
	return nil
}

func (uc *ManageHousesUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ManageHouses.Delete",
		"house_id": id.String(),
	})

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Failed to delete house", err, nil)
		return err
	}

	ucLogger.Info("House deleted", nil)
	return nil
}
