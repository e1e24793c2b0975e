package rest

import (
	"context"
	"net/http"
	"strings"

	"settlements-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

const settlementKey = contextKey("settlement")

// SettlementMiddleware разбирает поселок из URL и кладет его в контекст.
// Запросы к неизвестному поселку не доходят до обработчиков.
func SettlementMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "settlement")
		settlement, err := domain.ParseSettlement(raw)
		if err != nil {
			WriteJSONError(w, http.StatusNotFound, "Unknown settlement")
			return
		}

		ctx := context.WithValue(r.Context(), settlementKey, settlement)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SettlementFromRequest достает поселок, добавленный SettlementMiddleware.
func SettlementFromRequest(r *http.Request) (domain.Settlement, bool) {
	s, ok := r.Context().Value(settlementKey).(domain.Settlement)
	return s, ok
}

// SwitchSettlementPath переводит путь на другой поселок с сохранением
// под-страницы: /zapovednoe/houses -> /kolosok/houses. Если сегмент поселка
// в пути не распознан, возвращается корень целевого поселка.
func SwitchSettlementPath(path string, target domain.Settlement) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, segment := range segments {
		if _, err := domain.ParseSettlement(segment); err == nil {
			segments[i] = string(target)
			return "/" + strings.Join(segments, "/")
		}
	}
	return "/" + string(target)
}
