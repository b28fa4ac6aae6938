package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arohak/timesheet-backend-go/internal/domain/user"
	"github.com/arohak/timesheet-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newProtectedRouter(jwtSvc jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtSvc.JWTAuth()))
		r.Use(AuthRequired(jwtSvc.JWTAuth()))
		r.Use(AdminOnly)
		r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func TestAdminOnly_NoToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService(testSecret, "1h")
	router := newProtectedRouter(jwtSvc)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_UserToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService(testSecret, "1h")
	router := newProtectedRouter(jwtSvc)

	token, _, err := jwtSvc.GenerateToken("user-1", "AT0001", "user@example.com", "Test User", user.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_AdminToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService(testSecret, "1h")
	router := newProtectedRouter(jwtSvc)

	token, _, err := jwtSvc.GenerateToken("admin-1", "AT0198", "admin@example.com", "Admin", user.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly_TamperedToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService(testSecret, "1h")
	router := newProtectedRouter(jwtSvc)

	otherSvc := jwt.NewJWTService("a-different-secret", "1h")
	token, _, err := otherSvc.GenerateToken("admin-1", "AT0198", "admin@example.com", "Admin", user.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
