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

// AdminContentHandler - управление новостями, документами, галереей
// и настройками в админке.
type AdminContentHandler struct {
	newsUC     usecases_port.ManageNewsUseCase
	mediaUC    usecases_port.ManageMediaUseCase
	settingsUC usecases_port.ManageSettingsUseCase
}

func NewAdminContentHandler(
	newsUC usecases_port.ManageNewsUseCase,
	mediaUC usecases_port.ManageMediaUseCase,
	settingsUC usecases_port.ManageSettingsUseCase) *AdminContentHandler {
	return &AdminContentHandler{newsUC: newsUC, mediaUC: mediaUC, settingsUC: settingsUC}
}

// ListNews обрабатывает GET /admin/{settlement}/news — включая черновики.
func (h *AdminContentHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AdminListNews"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	items, err := h.newsUC.List(r.Context(), settlement)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to list news")
		return
	}

	RespondWithJSON(w, http.StatusOK, toNewsResponses(items))
}

// CreateNews обрабатывает POST /admin/{settlement}/news
func (h *AdminContentHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateNews"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode news request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.newsUC.Create(r.Context(), domain.News{
		Settlement:  settlement,
		Title:       reqDTO.Title,
		Body:        reqDTO.Body,
		ImageURL:    reqDTO.ImageURL,
		IsPublished: reqDTO.IsPublished,
	})
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to create news")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toNewsResponse(*created))
}

// UpdateNews обрабатывает PUT /admin/{settlement}/news/{newsID}
func (h *AdminContentHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateNews"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	newsID, err := uuid.Parse(chi.URLParam(r, "newsID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid news ID")
		return
	}

	var reqDTO NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode news request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.newsUC.Update(r.Context(), domain.News{
		ID:          newsID,
		Settlement:  settlement,
		Title:       reqDTO.Title,
		Body:        reqDTO.Body,
		ImageURL:    reqDTO.ImageURL,
		IsPublished: reqDTO.IsPublished,
	})
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to update news")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteNews обрабатывает DELETE /admin/{settlement}/news/{newsID}
func (h *AdminContentHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteNews"})

	newsID, err := uuid.Parse(chi.URLParam(r, "newsID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid news ID")
		return
	}

	if err := h.newsUC.Delete(r.Context(), newsID); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to delete news")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddDocument обрабатывает POST /admin/{settlement}/documents
func (h *AdminContentHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddDocument"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode document request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.mediaUC.AddDocument(r.Context(), domain.Document{
		Settlement: settlement,
		Title:      reqDTO.Title,
		FileURL:    reqDTO.FileURL,
	})
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to add document")
		return
	}

	RespondWithJSON(w, http.StatusCreated, DocumentResponse{
		ID:        created.ID,
		Title:     created.Title,
		FileURL:   created.FileURL,
		CreatedAt: created.CreatedAt,
	})
}

// DeleteDocument обрабатывает DELETE /admin/{settlement}/documents/{documentID}
func (h *AdminContentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteDocument"})

	documentID, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := h.mediaUC.DeleteDocument(r.Context(), documentID); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddGalleryImage обрабатывает POST /admin/{settlement}/gallery
func (h *AdminContentHandler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddGalleryImage"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO GalleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode gallery request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.mediaUC.AddGalleryImage(r.Context(), domain.GalleryImage{
		Settlement: settlement,
		ImageURL:   reqDTO.ImageURL,
		Caption:    reqDTO.Caption,
	})
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to add gallery image")
		return
	}

	RespondWithJSON(w, http.StatusCreated, GalleryImageResponse{
		ID:        created.ID,
		ImageURL:  created.ImageURL,
		Caption:   created.Caption,
		CreatedAt: created.CreatedAt,
	})
}

// DeleteGalleryImage обрабатывает DELETE /admin/{settlement}/gallery/{imageID}
func (h *AdminContentHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteGalleryImage"})

	imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid image ID")
		return
	}

	if err := h.mediaUC.DeleteGalleryImage(r.Context(), imageID); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to delete gallery image")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateSiteSettings обрабатывает PUT /admin/{settlement}/settings
func (h *AdminContentHandler) UpdateSiteSettings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateSiteSettings"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO SiteSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode settings request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.settingsUC.UpdateSite(r.Context(), domain.SiteSettings{
		Settlement:      settlement,
		Phone:           reqDTO.Phone,
		Email:           reqDTO.Email,
		Address:         reqDTO.Address,
		Telegram:        reqDTO.Telegram,
		Whatsapp:        reqDTO.Whatsapp,
		OfficeLatitude:  reqDTO.OfficeLatitude,
		OfficeLongitude: reqDTO.OfficeLongitude,
	})
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to update site settings")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPageSettings обрабатывает GET /admin/{settlement}/settings/pages
func (h *AdminContentHandler) ListPageSettings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListPageSettings"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	pages, err := h.settingsUC.ListPages(r.Context(), settlement)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to list page settings")
		return
	}

	response := make([]PageSettingsResponse, len(pages))
	for i, p := range pages {
		response[i] = toPageSettingsResponse(p)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// UpsertPageSettings обрабатывает PUT /admin/{settlement}/settings/pages
func (h *AdminContentHandler) UpsertPageSettings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpsertPageSettings"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	var reqDTO PageSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode page settings request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.settingsUC.UpsertPage(r.Context(), domain.PageSettings{
		Settlement:  settlement,
		Path:        reqDTO.Path,
		Title:       reqDTO.Title,
		Description: reqDTO.Description,
	})
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to save page settings")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPageSettingsResponse(*saved))
}
