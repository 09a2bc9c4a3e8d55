package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/planner/internal/ctxkeys"
	"github.com/plannerhq/planner/internal/db"
	"github.com/plannerhq/planner/internal/repository"
	"github.com/plannerhq/planner/internal/service"
)

func newAuthStack(t *testing.T) (*service.AuthService, *service.UserService) {
	t.Helper()

	d, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	d.SetMaxOpenConns(1)
	require.NoError(t, db.RunMigrations(d.DB, "sqlite"))
	t.Cleanup(func() { d.Close() })

	users := repository.NewUserRepository(d)
	return service.NewAuthService(users, "test-secret", time.Hour), service.NewUserService(users)
}

func TestAuthMiddleware(t *testing.T) {
	authSvc, userSvc := newAuthStack(t)

	user, err := authSvc.Register("alex@example.com", "correct horse battery", "Alex")
	require.NoError(t, err)
	token, err := authSvc.GenerateJWT(user)
	require.NoError(t, err)

	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := ctxkeys.User(r.Context())
		if u == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		assert.Empty(t, u.PasswordHash)
		w.Header().Set("X-User-ID", u.ID)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(authSvc, userSvc)(probe)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, user.ID, rec.Header().Get("X-User-ID"))
	})

	t.Run("auth cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, user.ID, rec.Header().Get("X-User-ID"))
	})

	t.Run("no token passes through unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("X-User-ID"))
	})

	t.Run("garbage token passes through unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("X-User-ID"))
	})
}

func TestRequireAuth(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	RequireAuth(next)(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, rec.Body.String())
}
