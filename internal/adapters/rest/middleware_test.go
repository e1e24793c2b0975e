package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"settlements-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoleRepo struct {
	roles map[uuid.UUID][]domain.Role
}

func (r *fakeRoleRepo) RolesByUserID(_ context.Context, userID uuid.UUID) ([]domain.Role, error) {
	return r.roles[userID], nil
}

func (r *fakeRoleRepo) AssignRole(_ context.Context, _ uuid.UUID, _ domain.Role) error { return nil }
func (r *fakeRoleRepo) RemoveRole(_ context.Context, _ uuid.UUID, _ domain.Role) error { return nil }

func signToken(t *testing.T, secret string, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestSettlementMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/{settlement}", func(r chi.Router) {
		r.Use(SettlementMiddleware)
		r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
			settlement, ok := SettlementFromRequest(req)
			require.True(t, ok)
			w.Write([]byte(settlement))
		})
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/zapovednoe/ping", http.StatusOK, "zapovednoe"},
		{"/kolosok/ping", http.StatusOK, "kolosok"},
		{"/lesnoy/ping", http.StatusNotFound, ""},
		{"/Zapovednoe/ping", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

		assert.Equal(t, tt.wantStatus, rec.Code, "path %s", tt.path)
		if tt.wantBody != "" {
			assert.Equal(t, tt.wantBody, rec.Body.String())
		}
	}
}

func TestSwitchSettlementPath(t *testing.T) {
	tests := []struct {
		path   string
		target domain.Settlement
		want   string
	}{
		{"/zapovednoe/houses", domain.SettlementKolosok, "/kolosok/houses"},
		{"/api/v1/kolosok/news/42", domain.SettlementZapovednoe, "/api/v1/zapovednoe/news/42"},
		{"/zapovednoe", domain.SettlementKolosok, "/kolosok"},
		// Пути без сегмента поселка ведут на его корень
		{"/about", domain.SettlementKolosok, "/kolosok"},
		{"/", domain.SettlementZapovednoe, "/zapovednoe"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SwitchSettlementPath(tt.path, tt.target), "path %s", tt.path)
	}
}

func TestAuthenticate(t *testing.T) {
	const secret = "test-secret"
	userID := uuid.New()

	am, err := NewAuthMiddleware(secret, &fakeRoleRepo{})
	require.NoError(t, err)

	handler := am.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, ok := UserIDFromRequest(r)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("Валидный токен пропускается, userID попадает в контекст", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, userID.String()))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Без заголовка — 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Без префикса Bearer — 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", signToken(t, secret, userID.String()))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Токен с чужим секретом — 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", userID.String()))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Subject не UUID — 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, "user-42"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireManage(t *testing.T) {
	const secret = "test-secret"

	admin := uuid.New()
	chairmanZap := uuid.New()
	resident := uuid.New()

	roleRepo := &fakeRoleRepo{roles: map[uuid.UUID][]domain.Role{
		admin:       {domain.RoleAdmin},
		chairmanZap: {domain.RoleChairmanZapovednoe},
		resident:    {domain.RoleResidentZapovednoe},
	}}

	am, err := NewAuthMiddleware(secret, roleRepo)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/admin/{settlement}", func(r chi.Router) {
		r.Use(am.Authenticate, SettlementMiddleware, am.RequireManage)
		r.Get("/blocks", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	tests := []struct {
		name       string
		userID     uuid.UUID
		path       string
		wantStatus int
	}{
		{"Админ управляет любым поселком", admin, "/admin/kolosok/blocks", http.StatusOK},
		{"Председатель управляет своим поселком", chairmanZap, "/admin/zapovednoe/blocks", http.StatusOK},
		{"Председатель не управляет чужим поселком", chairmanZap, "/admin/kolosok/blocks", http.StatusForbidden},
		{"Житель не управляет ничем", resident, "/admin/zapovednoe/blocks", http.StatusForbidden},
		{"Пользователь без ролей", uuid.New(), "/admin/zapovednoe/blocks", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, secret, tt.userID.String()))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	const secret = "test-secret"

	admin := uuid.New()
	chairman := uuid.New()

	roleRepo := &fakeRoleRepo{roles: map[uuid.UUID][]domain.Role{
		admin:    {domain.RoleResidentKolosok, domain.RoleAdmin},
		chairman: {domain.RoleChairmanZapovednoe},
	}}

	am, err := NewAuthMiddleware(secret, roleRepo)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/admin", func(r chi.Router) {
		r.Use(am.Authenticate, am.RequireAdmin)
		r.Get("/users", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	t.Run("Админ проходит", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, admin.String()))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Председатель — 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, chairman.String()))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestNewAuthMiddleware(t *testing.T) {
	_, err := NewAuthMiddleware("", &fakeRoleRepo{})
	assert.Error(t, err)

	_, err = NewAuthMiddleware("secret", nil)
	assert.Error(t, err)
}
