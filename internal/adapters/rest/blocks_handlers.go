package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
	"settlements-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// BlocksHandler - обработчики конструктора главной страницы.
type BlocksHandler struct {
	listUC       usecases_port.ListBlocksUseCase
	createUC     usecases_port.CreateBlockUseCase
	updateUC     usecases_port.UpdateBlockContentUseCase
	setEnabledUC usecases_port.SetBlockEnabledUseCase
	moveUC       usecases_port.MoveBlockUseCase
	deleteUC     usecases_port.DeleteBlockUseCase
}

func NewBlocksHandler(
	listUC usecases_port.ListBlocksUseCase,
	createUC usecases_port.CreateBlockUseCase,
	updateUC usecases_port.UpdateBlockContentUseCase,
	setEnabledUC usecases_port.SetBlockEnabledUseCase,
	moveUC usecases_port.MoveBlockUseCase,
	deleteUC usecases_port.DeleteBlockUseCase) *BlocksHandler {
	return &BlocksHandler{
		listUC:       listUC,
		createUC:     createUC,
		updateUC:     updateUC,
		setEnabledUC: setEnabledUC,
		moveUC:       moveUC,
		deleteUC:     deleteUC,
	}
}

// GetHomepage обрабатывает GET /{settlement}/homepage — публичный рендер:
// тот же порядок, что в админке, но без выключенных блоков.
func (h *BlocksHandler) GetHomepage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetHomepage"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	blocks, err := h.listUC.Execute(r.Context(), settlement)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to load homepage")
		return
	}

	RespondWithJSON(w, http.StatusOK, toBlockResponses(domain.EnabledOnly(blocks)))
}

// ListBlocks обрабатывает GET /admin/{settlement}/blocks — все блоки,
// включая выключенные.
func (h *BlocksHandler) ListBlocks(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListBlocks"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	blocks, err := h.listUC.Execute(r.Context(), settlement)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to list blocks")
		return
	}

	RespondWithJSON(w, http.StatusOK, toBlockResponses(blocks))
}

// CreateBlock обрабатывает POST /admin/{settlement}/blocks.
// Новый блок получает содержимое-заготовку и встает в конец списка.
func (h *BlocksHandler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateBlock"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO CreateBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode create block request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blockType, err := domain.ParseBlockType(reqDTO.BlockType)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	block, err := h.createUC.Execute(r.Context(), settlement, blockType)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to create block")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toBlockResponse(*block))
}

// UpdateBlockContent обрабатывает PUT /admin/{settlement}/blocks/{blockID}/content.
// Тело запроса — новое содержимое целиком; частичных обновлений нет.
func (h *BlocksHandler) UpdateBlockContent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateBlockContent"})

	blockID, err := uuid.Parse(chi.URLParam(r, "blockID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid block ID")
		return
	}

	rawContent, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	block, err := h.updateUC.Execute(r.Context(), blockID, json.RawMessage(rawContent))
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to update block content")
		return
	}

	RespondWithJSON(w, http.StatusOK, toBlockResponse(*block))
}

// SetBlockEnabled обрабатывает PATCH /admin/{settlement}/blocks/{blockID}/enabled.
// Выключенный блок сохраняет содержимое и позицию.
func (h *BlocksHandler) SetBlockEnabled(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SetBlockEnabled"})

	blockID, err := uuid.Parse(chi.URLParam(r, "blockID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid block ID")
		return
	}

	var reqDTO SetBlockEnabledRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode set enabled request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.setEnabledUC.Execute(r.Context(), blockID, reqDTO.IsEnabled); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to toggle block")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveBlock обрабатывает POST /admin/{settlement}/blocks/move.
// Перемещение за границу списка — no-op с успешным ответом.
func (h *BlocksHandler) MoveBlock(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "MoveBlock"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO MoveBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode move block request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.moveUC.Execute(r.Context(), settlement, reqDTO.Index, usecases_port.MoveDirection(reqDTO.Direction))
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to move block")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteBlock обрабатывает DELETE /admin/{settlement}/blocks/{blockID}.
// Остальные блоки не перенумеровываются.
func (h *BlocksHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteBlock"})

	blockID, err := uuid.Parse(chi.URLParam(r, "blockID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid block ID")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), blockID); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to delete block")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
