package usecase

import (
	"context"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
)

type FindHousesUseCase struct {
	storage port.HouseStoragePort
}

func NewFindHousesUseCase(storage port.HouseStoragePort) *FindHousesUseCase {
	return &FindHousesUseCase{storage: storage}
}

// Execute ищет дома по разреженному набору фильтров. Пустой набор
// возвращает весь каталог поселка.
func (uc *FindHousesUseCase) Execute(ctx context.Context, settlement domain.Settlement, filters domain.CatalogFilters) ([]domain.House, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "FindHouses",
		"settlement": settlement,
	})

	houses, err := uc.storage.FindWithFilters(ctx, settlement, filters)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Houses found", port.Fields{"count": len(houses)})
	return houses, nil
}
