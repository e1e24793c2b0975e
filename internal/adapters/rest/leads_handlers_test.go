package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLeadStorage struct {
	inserted []domain.Lead
}

func (s *recordingLeadStorage) Insert(_ context.Context, lead *domain.Lead) error {
	s.inserted = append(s.inserted, *lead)
	return nil
}

func (s *recordingLeadStorage) List(_ context.Context, _ domain.Settlement, _ domain.LeadKind, _ domain.RequestStatus) ([]domain.Lead, error) {
	return s.inserted, nil
}

func (s *recordingLeadStorage) UpdateStatus(_ context.Context, _ domain.LeadKind, _ uuid.UUID, _ domain.RequestStatus) error {
	return nil
}

func newLeadsRouter(storage *recordingLeadStorage) chi.Router {
	handler := NewLeadsHandler(usecase.NewSubmitLeadUseCase(storage, nil))

	r := chi.NewRouter()
	r.Route("/{settlement}", func(r chi.Router) {
		r.Use(SettlementMiddleware)
		r.Post("/leads/contact", handler.SubmitContact)
		r.Post("/leads/viewing", handler.SubmitViewing)
		r.Post("/leads/support", handler.SubmitSupport)
	})
	return r
}

func TestSubmitLeadHandler(t *testing.T) {
	t.Run("Валидная форма — 201 и запись в хранилище", func(t *testing.T) {
		storage := &recordingLeadStorage{}
		r := newLeadsRouter(storage)

		body := `{"name":"Иван","phone":"+7 900 123-45-67","message":"Перезвоните"}`
		req := httptest.NewRequest(http.MethodPost, "/zapovednoe/leads/contact", strings.NewReader(body))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp LeadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "new", resp.Status)
		assert.NotEmpty(t, resp.ID)

		require.Len(t, storage.inserted, 1)
		assert.Equal(t, domain.LeadContact, storage.inserted[0].Kind)
		assert.Equal(t, domain.SettlementZapovednoe, storage.inserted[0].Settlement)
	})

	t.Run("Запись на просмотр сохраняет house_id", func(t *testing.T) {
		storage := &recordingLeadStorage{}
		r := newLeadsRouter(storage)
		houseID := uuid.New()

		body := `{"name":"Мария","phone":"+7 900 000-00-00","house_id":"` + houseID.String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/kolosok/leads/viewing", strings.NewReader(body))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, storage.inserted, 1)
		require.NotNil(t, storage.inserted[0].HouseID)
		assert.Equal(t, houseID, *storage.inserted[0].HouseID)
	})

	t.Run("Невалидный email — 400, хранилище не тронуто", func(t *testing.T) {
		storage := &recordingLeadStorage{}
		r := newLeadsRouter(storage)

		body := `{"name":"Иван","phone":"+7 900 123-45-67","email":"not-an-email"}`
		req := httptest.NewRequest(http.MethodPost, "/zapovednoe/leads/contact", strings.NewReader(body))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, storage.inserted)
	})

	t.Run("Поддержка без email — 400", func(t *testing.T) {
		storage := &recordingLeadStorage{}
		r := newLeadsRouter(storage)

		body := `{"name":"Иван","phone":"+7 900 123-45-67"}`
		req := httptest.NewRequest(http.MethodPost, "/kolosok/leads/support", strings.NewReader(body))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, storage.inserted)
	})

	t.Run("Невалидный house_id — 400", func(t *testing.T) {
		storage := &recordingLeadStorage{}
		r := newLeadsRouter(storage)

		body := `{"name":"Иван","phone":"+7 900 123-45-67","house_id":"42"}`
		req := httptest.NewRequest(http.MethodPost, "/zapovednoe/leads/viewing", strings.NewReader(body))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, storage.inserted)
	})

	t.Run("Неизвестный поселок — 404", func(t *testing.T) {
		storage := &recordingLeadStorage{}
		r := newLeadsRouter(storage)

		body := `{"name":"Иван","phone":"+7 900 123-45-67"}`
		req := httptest.NewRequest(http.MethodPost, "/lesnoy/leads/contact", strings.NewReader(body))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, storage.inserted)
	})
}
