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

// UserHandler - личный кабинет: избранное, просмотренное, профиль.
type UserHandler struct {
	addFavUC     usecases_port.AddToFavoritesUseCase
	removeFavUC  usecases_port.RemoveFromFavoritesUseCase
	favoritesUC  usecases_port.GetUserFavoritesUseCase
	favoriteIDUC usecases_port.GetUserFavoriteIDsUseCase
	markViewedUC usecases_port.MarkHouseViewedUseCase
	viewedUC     usecases_port.GetViewedHousesUseCase
	profileUC    usecases_port.GetProfileUseCase
	updateProfUC usecases_port.UpdateProfileUseCase
}

func NewUserHandler(
	addFavUC usecases_port.AddToFavoritesUseCase,
	removeFavUC usecases_port.RemoveFromFavoritesUseCase,
	favoritesUC usecases_port.GetUserFavoritesUseCase,
	favoriteIDUC usecases_port.GetUserFavoriteIDsUseCase,
	markViewedUC usecases_port.MarkHouseViewedUseCase,
	viewedUC usecases_port.GetViewedHousesUseCase,
	profileUC usecases_port.GetProfileUseCase,
	updateProfUC usecases_port.UpdateProfileUseCase) *UserHandler {
	return &UserHandler{
		addFavUC:     addFavUC,
		removeFavUC:  removeFavUC,
		favoritesUC:  favoritesUC,
		favoriteIDUC: favoriteIDUC,
		markViewedUC: markViewedUC,
		viewedUC:     viewedUC,
		profileUC:    profileUC,
		updateProfUC: updateProfUC,
	}
}

// GetFavorites обрабатывает GET /user/favorites
func (h *UserHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFavorites"})

	userID, ok := UserIDFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	cards, err := h.favoritesUC.Execute(r.Context(), userID)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to retrieve favorites")
		return
	}

	RespondWithJSON(w, http.StatusOK, toUserHouseCardResponses(cards))
}

// GetFavoriteIDs обрабатывает GET /user/favorites/ids — для подсветки
// сердечек в каталоге без загрузки карточек.
func (h *UserHandler) GetFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFavoriteIDs"})

	userID, ok := UserIDFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ids, err := h.favoriteIDUC.Execute(r.Context(), userID)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to retrieve favorite ids")
		return
	}

	RespondWithJSON(w, http.StatusOK, ids)
}

// AddFavorite обрабатывает POST /user/favorites
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddFavorite"})

	userID, ok := UserIDFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var reqDTO AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode add favorite request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	houseID, err := uuid.Parse(reqDTO.HouseID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid house_id format")
		return
	}

	if err := h.addFavUC.Execute(r.Context(), userID, houseID); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to add to favorites")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// RemoveFavorite обрабатывает DELETE /user/favorites/{houseID}
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveFavorite"})

	userID, ok := UserIDFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	houseID, err := uuid.Parse(chi.URLParam(r, "houseID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid house ID in URL")
		return
	}

	if err := h.removeFavUC.Execute(r.Context(), userID, houseID); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to remove from favorites")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkViewed обрабатывает POST /user/viewed/{houseID}
func (h *UserHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "MarkViewed"})

	userID, ok := UserIDFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	houseID, err := uuid.Parse(chi.URLParam(r, "houseID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid house ID in URL")
		return
	}

	if err := h.markViewedUC.Execute(r.Context(), userID, houseID); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to mark house as viewed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetViewed обрабатывает GET /user/viewed
func (h *UserHandler) GetViewed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetViewed"})

	userID, ok := UserIDFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	cards, err := h.viewedUC.Execute(r.Context(), userID)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to retrieve viewed houses")
		return
	}

	RespondWithJSON(w, http.StatusOK, toUserHouseCardResponses(cards))
}

// GetProfile обрабатывает GET /user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProfile"})

	userID, ok := UserIDFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.profileUC.Execute(r.Context(), userID)
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to retrieve profile")
		return
	}

	RespondWithJSON(w, http.StatusOK, ProfileResponse{
		UserID:   profile.UserID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Phone:    profile.Phone,
	})
}

// UpdateProfile обрабатывает PUT /user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProfile"})

	userID, ok := UserIDFromRequest(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var reqDTO UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode profile request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.updateProfUC.Execute(r.Context(), domain.Profile{
		UserID:   userID,
		Email:    reqDTO.Email,
		FullName: reqDTO.FullName,
		Phone:    reqDTO.Phone,
	})
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to update profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
