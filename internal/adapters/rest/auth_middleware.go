package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Определяем кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const userIDKey = contextKey("userID")

// AuthMiddleware проверяет JWT и права доступа. Токены выпускает внешний
// identity-сервис; здесь токен только валидируется общим секретом,
// а роли берутся из собственной таблицы.
type AuthMiddleware struct {
	secret []byte
	roles  port.RoleRepositoryPort
}

func NewAuthMiddleware(secret string, roles port.RoleRepositoryPort) (*AuthMiddleware, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth middleware: JWT secret is required")
	}
	if roles == nil {
		return nil, fmt.Errorf("auth middleware: role repository cannot be nil")
	}
	return &AuthMiddleware{secret: []byte(secret), roles: roles}, nil
}

// Authenticate - middleware для проверки JWT
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return am.secret, nil
		})
		if err != nil || !token.Valid {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token claims")
			return
		}
		userID, err := uuid.Parse(subject)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token subject")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireManage пускает дальше только роли, которым разрешено управлять
// поселком из URL: админа или председателя этого поселка.
func (am *AuthMiddleware) RequireManage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
		if !ok {
			WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		settlement, ok := SettlementFromRequest(r)
		if !ok {
			WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
			return
		}

		roles, err := am.roles.RolesByUserID(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to load user roles", err, port.Fields{"user_id": userID.String()})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to check permissions")
			return
		}

		for _, role := range roles {
			if role.CanManage(settlement) {
				next.ServeHTTP(w, r)
				return
			}
		}

		logger.Warn("Access denied", port.Fields{
			"user_id":    userID.String(),
			"settlement": settlement,
		})
		WriteJSONError(w, http.StatusForbidden, "Forbidden")
	})
}

// RequireAdmin пускает дальше только глобального администратора.
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
		if !ok {
			WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		roles, err := am.roles.RolesByUserID(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to load user roles", err, port.Fields{"user_id": userID.String()})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to check permissions")
			return
		}

		for _, role := range roles {
			if role == domain.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}
		}

		WriteJSONError(w, http.StatusForbidden, "Forbidden")
	})
}

// UserIDFromRequest достает userID, добавленный Authenticate.
func UserIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(userIDKey).(uuid.UUID)
	return id, ok
}
