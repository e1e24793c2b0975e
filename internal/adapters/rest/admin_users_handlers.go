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

// AdminUsersHandler - управление пользователями и ролями.
// Доступно только глобальному администратору.
type AdminUsersHandler struct {
	usersUC usecases_port.ManageUsersUseCase
}

func NewAdminUsersHandler(usersUC usecases_port.ManageUsersUseCase) *AdminUsersHandler {
	return &AdminUsersHandler{usersUC: usersUC}
}

// ListUsers обрабатывает GET /admin/users
func (h *AdminUsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListUsers"})

	users, err := h.usersUC.List(r.Context())
	if err != nil {
		HandleUseCaseError(w, logger, err, "Failed to list users")
		return
	}

	response := make([]UserWithRolesResponse, len(users))
	for i, u := range users {
		roles := make([]string, len(u.Roles))
		for j, role := range u.Roles {
			roles[j] = string(role)
		}
		response[i] = UserWithRolesResponse{
			UserID:   u.Profile.UserID,
			Email:    u.Profile.Email,
			FullName: u.Profile.FullName,
			Roles:    roles,
		}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// AssignRole обрабатывает POST /admin/users/{userID}/roles
func (h *AdminUsersHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AssignRole"})

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var reqDTO RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode role request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.usersUC.AssignRole(r.Context(), userID, domain.Role(reqDTO.Role)); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to assign role")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveRole обрабатывает DELETE /admin/users/{userID}/roles/{role}
func (h *AdminUsersHandler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveRole"})

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	role := chi.URLParam(r, "role")

	if err := h.usersUC.RemoveRole(r.Context(), userID, domain.Role(role)); err != nil {
		HandleUseCaseError(w, logger, err, "Failed to remove role")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
