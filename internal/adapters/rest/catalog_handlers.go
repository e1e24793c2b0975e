package rest

import (
	"net/http"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
	"settlements-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CatalogHandler - публичные обработчики каталога домов и участков.
type CatalogHandler struct {
	findHousesUC usecases_port.FindHousesUseCase
	houseUC      usecases_port.GetHouseDetailsUseCase
	findPlotsUC  usecases_port.FindPlotsUseCase
	plotUC       usecases_port.GetPlotDetailsUseCase
	mapUC        usecases_port.GetCatalogMapUseCase
}

func NewCatalogHandler(
	findHousesUC usecases_port.FindHousesUseCase,
	houseUC usecases_port.GetHouseDetailsUseCase,
	findPlotsUC usecases_port.FindPlotsUseCase,
	plotUC usecases_port.GetPlotDetailsUseCase,
	mapUC usecases_port.GetCatalogMapUseCase) *CatalogHandler {
	return &CatalogHandler{
		findHousesUC: findHousesUC,
		houseUC:      houseUC,
		findPlotsUC:  findPlotsUC,
		plotUC:       plotUC,
		mapUC:        mapUC,
	}
}

// parseCatalogFilters собирает фильтры из query-параметров.
// Невалидное число — ошибка запроса, фильтр не игнорируется молча.
func parseCatalogFilters(r *http.Request) (domain.CatalogFilters, error) {
	var filters domain.CatalogFilters
	var err error

	if filters.MinPrice, err = GetOptionalInt64(r, "min_price"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = GetOptionalInt64(r, "max_price"); err != nil {
		return filters, err
	}
	if filters.MinArea, err = GetOptionalFloat(r, "min_area"); err != nil {
		return filters, err
	}
	if filters.MaxArea, err = GetOptionalFloat(r, "max_area"); err != nil {
		return filters, err
	}
	if filters.MinRooms, err = GetOptionalInt(r, "min_rooms"); err != nil {
		return filters, err
	}
	filters.Status = r.URL.Query().Get("status")
	return filters, nil
}

// FindHouses обрабатывает GET /{settlement}/houses
func (h *CatalogHandler) FindHouses(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FindHouses"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	filters, err := parseCatalogFilters(r)
	if err != nil {
		logger.Warn("Invalid catalog filters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	houses, err := h.findHousesUC.Execute(r.Context(), settlement, filters)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to find houses")
		return
	}

	response := make([]HouseCardResponse, len(houses))
	for i, house := range houses {
		response[i] = toHouseCardResponse(house)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetHouseDetails обрабатывает GET /{settlement}/houses/{houseID}
func (h *CatalogHandler) GetHouseDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetHouseDetails"})

	houseID, err := uuid.Parse(chi.URLParam(r, "houseID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid house ID")
		return
	}

	house, err := h.houseUC.Execute(r.Context(), houseID)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to get house details")
		return
	}

	RespondWithJSON(w, http.StatusOK, toHouseDetailsResponse(*house))
}

// FindPlots обрабатывает GET /{settlement}/plots
func (h *CatalogHandler) FindPlots(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FindPlots"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	filters, err := parseCatalogFilters(r)
	if err != nil {
		logger.Warn("Invalid catalog filters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	plots, err := h.findPlotsUC.Execute(r.Context(), settlement, filters)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to find plots")
		return
	}

	response := make([]PlotResponse, len(plots))
	for i, plot := range plots {
		response[i] = toPlotResponse(plot)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetPlotDetails обрабатывает GET /{settlement}/plots/{plotID}
func (h *CatalogHandler) GetPlotDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPlotDetails"})

	plotID, err := uuid.Parse(chi.URLParam(r, "plotID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid plot ID")
		return
	}

	plot, err := h.plotUC.Execute(r.Context(), plotID)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to get plot details")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPlotResponse(*plot))
}

// GetMap обрабатывает GET /{settlement}/map — дома и участки с координатами.
func (h *CatalogHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetMap"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	points, err := h.mapUC.Execute(r.Context(), settlement)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to load catalog map")
		return
	}

	response := make([]MapPointResponse, len(points))
	for i, p := range points {
		response[i] = toMapPointResponse(p)
	}
	RespondWithJSON(w, http.StatusOK, response)
}
