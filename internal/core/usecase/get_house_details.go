package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type GetHouseDetailsUseCase struct {
	storage port.HouseStoragePort
}

func NewGetHouseDetailsUseCase(storage port.HouseStoragePort) *GetHouseDetailsUseCase {
	return &GetHouseDetailsUseCase{storage: storage}
}

// Execute возвращает ErrNotFound для несуществующего дома: страница
// деталей рендерит отдельное "не найдено", а не падает.
func (uc *GetHouseDetailsUseCase) Execute(ctx context.Context, houseID uuid.UUID) (*domain.House, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetHouseDetails",
		"house_id": houseID.String(),
	})

	house, err := uc.storage.GetByID(ctx, houseID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if house == nil {
		ucLogger.Warn("House not found", nil)
		return nil, domain.ErrNotFound
	}

	return house, nil
}
