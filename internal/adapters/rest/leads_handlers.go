package rest

import (
	"encoding/json"
	"net/http"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
	"settlements-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

// LeadsHandler - публичный прием обращений: контактная форма,
// запись на просмотр и тикеты поддержки.
type LeadsHandler struct {
	submitUC usecases_port.SubmitLeadUseCase
}

func NewLeadsHandler(submitUC usecases_port.SubmitLeadUseCase) *LeadsHandler {
	return &LeadsHandler{submitUC: submitUC}
}

func (h *LeadsHandler) submit(w http.ResponseWriter, r *http.Request, kind domain.LeadKind) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "SubmitLead",
		"kind":    kind,
	})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO SubmitLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode lead request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead := domain.Lead{
		Kind:       kind,
		Settlement: settlement,
		Name:       reqDTO.Name,
		Phone:      reqDTO.Phone,
		Email:      reqDTO.Email,
		Message:    reqDTO.Message,
	}

	if reqDTO.HouseID != "" {
		houseID, err := uuid.Parse(reqDTO.HouseID)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "Invalid house_id format")
			return
		}
		lead.HouseID = &houseID
	}

	created, err := h.submitUC.Execute(r.Context(), lead)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to submit request")
		return
	}

	logger.Info("Lead submitted", port.Fields{"lead_id": created.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toLeadResponse(*created))
}

// SubmitContact обрабатывает POST /{settlement}/leads/contact
func (h *LeadsHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.LeadContact)
}

// SubmitViewing обрабатывает POST /{settlement}/leads/viewing
func (h *LeadsHandler) SubmitViewing(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.LeadViewing)
}

// SubmitSupport обрабатывает POST /{settlement}/leads/support
func (h *LeadsHandler) SubmitSupport(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.LeadSupport)
}
