package rest

import (
	"encoding/json"
	"net/http"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
	"settlements-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminCatalogHandler - управление домами и участками в админке.
type AdminCatalogHandler struct {
	housesUC usecases_port.ManageHousesUseCase
	plotsUC  usecases_port.ManagePlotsUseCase
}

func NewAdminCatalogHandler(housesUC usecases_port.ManageHousesUseCase, plotsUC usecases_port.ManagePlotsUseCase) *AdminCatalogHandler {
	return &AdminCatalogHandler{housesUC: housesUC, plotsUC: plotsUC}
}

func houseFromRequest(reqDTO HouseRequest, settlement domain.Settlement) domain.House {
	return domain.House{
		Settlement:  settlement,
		Title:       reqDTO.Title,
		Description: reqDTO.Description,
		PriceRub:    reqDTO.PriceRub,
		AreaM2:      reqDTO.AreaM2,
		PlotAreaM2:  reqDTO.PlotAreaM2,
		Rooms:       reqDTO.Rooms,
		Floors:      reqDTO.Floors,
		Status:      domain.ObjectStatus(reqDTO.Status),
		Images:      reqDTO.Images,
		Latitude:    reqDTO.Latitude,
		Longitude:   reqDTO.Longitude,
		IsPublished: reqDTO.IsPublished,
	}
}

// CreateHouse обрабатывает POST /admin/{settlement}/houses
func (h *AdminCatalogHandler) CreateHouse(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateHouse"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO HouseRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode house request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.housesUC.Create(r.Context(), houseFromRequest(reqDTO, settlement))
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to create house")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toHouseDetailsResponse(*created))
}

// UpdateHouse обрабатывает PUT /admin/{settlement}/houses/{houseID}
func (h *AdminCatalogHandler) UpdateHouse(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateHouse"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	houseID, err := uuid.Parse(chi.URLParam(r, "houseID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid house ID")
		return
	}

	var reqDTO HouseRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode house request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	house := houseFromRequest(reqDTO, settlement)
	house.ID = houseID

	if err := h.housesUC.Update(r.Context(), house); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to update house")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteHouse обрабатывает DELETE /admin/{settlement}/houses/{houseID}
func (h *AdminCatalogHandler) DeleteHouse(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteHouse"})

	houseID, err := uuid.Parse(chi.URLParam(r, "houseID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid house ID")
		return
	}

	if err := h.housesUC.Delete(r.Context(), houseID); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to delete house")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func plotFromRequest(reqDTO PlotRequest, settlement domain.Settlement) domain.Plot {
	return domain.Plot{
		Settlement:      settlement,
		Number:          reqDTO.Number,
		AreaM2:          reqDTO.AreaM2,
		PriceRub:        reqDTO.PriceRub,
		Status:          domain.ObjectStatus(reqDTO.Status),
		CadastralNumber: reqDTO.CadastralNumber,
		Latitude:        reqDTO.Latitude,
		Longitude:       reqDTO.Longitude,
	}
}

// CreatePlot обрабатывает POST /admin/{settlement}/plots
func (h *AdminCatalogHandler) CreatePlot(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePlot"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO PlotRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode plot request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.plotsUC.Create(r.Context(), plotFromRequest(reqDTO, settlement))
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to create plot")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toPlotResponse(*created))
}

// UpdatePlot обрабатывает PUT /admin/{settlement}/plots/{plotID}
func (h *AdminCatalogHandler) UpdatePlot(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdatePlot"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	plotID, err := uuid.Parse(chi.URLParam(r, "plotID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid plot ID")
		return
	}

	var reqDTO PlotRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode plot request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plot := plotFromRequest(reqDTO, settlement)
	plot.ID = plotID

	if err := h.plotsUC.Update(r.Context(), plot); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to update plot")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeletePlot обрабатывает DELETE /admin/{settlement}/plots/{plotID}
func (h *AdminCatalogHandler) DeletePlot(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeletePlot"})

	plotID, err := uuid.Parse(chi.URLParam(r, "plotID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid plot ID")
		return
	}

	if err := h.plotsUC.Delete(r.Context(), plotID); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to delete plot")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
