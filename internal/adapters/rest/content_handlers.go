package rest

import (
	"net/http"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/port"
	"settlements-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ContentHandler - публичные обработчики новостей, документов,
// галереи и настроек сайта.
type ContentHandler struct {
	newsFeedUC     usecases_port.GetNewsFeedUseCase
	newsDetailsUC  usecases_port.GetNewsDetailsUseCase
	documentsUC    usecases_port.GetDocumentsUseCase
	galleryUC      usecases_port.GetGalleryUseCase
	siteSettingsUC usecases_port.GetSiteSettingsUseCase
	pageSettingsUC usecases_port.GetPageSettingsUseCase
}

func NewContentHandler(
	newsFeedUC usecases_port.GetNewsFeedUseCase,
	newsDetailsUC usecases_port.GetNewsDetailsUseCase,
	documentsUC usecases_port.GetDocumentsUseCase,
	galleryUC usecases_port.GetGalleryUseCase,
	siteSettingsUC usecases_port.GetSiteSettingsUseCase,
	pageSettingsUC usecases_port.GetPageSettingsUseCase) *ContentHandler {
	return &ContentHandler{
		newsFeedUC:     newsFeedUC,
		newsDetailsUC:  newsDetailsUC,
		documentsUC:    documentsUC,
		galleryUC:      galleryUC,
		siteSettingsUC: siteSettingsUC,
		pageSettingsUC: pageSettingsUC,
	}
}

// GetNewsFeed обрабатывает GET /{settlement}/news
func (h *ContentHandler) GetNewsFeed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetNewsFeed"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	limit, err := GetLimitOrDefault(r, 20)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid offset parameter")
		return
	}

	items, err := h.newsFeedUC.Execute(r.Context(), settlement, limit, offset)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to load news feed")
		return
	}

	RespondWithJSON(w, http.StatusOK, toNewsResponses(items))
}

// GetNewsDetails обрабатывает GET /{settlement}/news/{newsID}.
// Неопубликованная новость для публичной выдачи не существует.
func (h *ContentHandler) GetNewsDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetNewsDetails"})

	newsID, err := uuid.Parse(chi.URLParam(r, "newsID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid news ID")
		return
	}

	news, err := h.newsDetailsUC.Execute(r.Context(), newsID)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to load news")
		return
	}

	RespondWithJSON(w, http.StatusOK, toNewsResponse(*news))
}

// GetDocuments обрабатывает GET /{settlement}/documents
func (h *ContentHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDocuments"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	docs, err := h.documentsUC.Execute(r.Context(), settlement)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to load documents")
		return
	}

	response := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		response[i] = DocumentResponse{ID: d.ID, Title: d.Title, FileURL: d.FileURL, CreatedAt: d.CreatedAt}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetGallery обрабатывает GET /{settlement}/gallery
func (h *ContentHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetGallery"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	images, err := h.galleryUC.Execute(r.Context(), settlement)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to load gallery")
		return
	}

	response := make([]GalleryImageResponse, len(images))
	for i, img := range images {
		response[i] = GalleryImageResponse{ID: img.ID, ImageURL: img.ImageURL, Caption: img.Caption, CreatedAt: img.CreatedAt}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetSiteSettings обрабатывает GET /{settlement}/settings
func (h *ContentHandler) GetSiteSettings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetSiteSettings"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	settings, err := h.siteSettingsUC.Execute(r.Context(), settlement)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to load site settings")
		return
	}

	RespondWithJSON(w, http.StatusOK, toSiteSettingsResponse(*settings))
}

// GetPageSettings обрабатывает GET /{settlement}/settings/page?path=/catalog
func (h *ContentHandler) GetPageSettings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPageSettings"})

	settlement, ok := SettlementFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		WriteJSONError(w, http.StatusBadRequest, "path parameter is required")
		return
	}

	page, err := h.pageSettingsUC.Execute(r.Context(), settlement, path)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to load page settings")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPageSettingsResponse(*page))
}
