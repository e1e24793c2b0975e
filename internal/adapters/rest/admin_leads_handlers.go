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

// AdminLeadsHandler - работа с обращениями в админке.
type AdminLeadsHandler struct {
	leadsUC usecases_port.ManageLeadsUseCase
}

func NewAdminLeadsHandler(leadsUC usecases_port.ManageLeadsUseCase) *AdminLeadsHandler {
	return &AdminLeadsHandler{leadsUC: leadsUC}
}

// ListLeads обрабатывает GET /admin/{settlement}/leads/{kind}?status=new
func (h *AdminLeadsHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListLeads"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	kind, err := domain.ParseLeadKind(chi.URLParam(r, "kind"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Пустой статус — все обращения этого вида
	var status domain.RequestStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err = domain.ParseRequestStatus(raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	leads, err := h.leadsUC.List(r.Context(), settlement, kind, status)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to list leads")
		return
	}

	response := make([]LeadResponse, len(leads))
	for i, l := range leads {
		response[i] = toLeadResponse(l)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// UpdateLeadStatus обрабатывает PATCH /admin/{settlement}/leads/{kind}/{leadID}
func (h *AdminLeadsHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateLeadStatus"})

	kind, err := domain.ParseLeadKind(chi.URLParam(r, "kind"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	var reqDTO UpdateLeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode status request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.leadsUC.UpdateStatus(r.Context(), kind, leadID, domain.RequestStatus(reqDTO.Status)); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to update lead status")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
