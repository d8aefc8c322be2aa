package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
	"she-fix/internal/data/repository"
	"she-fix/pkg/utils"
)

func seedUser(t *testing.T, repo *repository.Repository, role entity.UserRole) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:      "Test User",
		Email:     uuid.NewString() + "@example.com",
		Role:      role,
		KYCStatus: entity.KYCStatusPending,
		Language:  "en",
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func okHandler(t *testing.T, wantRole entity.UserRole) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := utils.GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		role, _ := utils.GetRoleFromContext(r.Context())
		assert.Equal(t, string(wantRole), role)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestActingUser(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	seeker := seedUser(t, repo, entity.RoleSeeker)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed id", "abc", http.StatusUnauthorized},
		{"unknown user", uuid.NewString(), http.StatusUnauthorized},
		{"known user", seeker.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ActingUser(repo.User, zap.NewNop())(okHandler(t, entity.RoleSeeker))

			req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	seeker := seedUser(t, repo, entity.RoleSeeker)
	worker := seedUser(t, repo, entity.RoleWorker)

	chain := func() http.Handler {
		return ActingUser(repo.User, zap.NewNop())(
			RequireRole(entity.RoleWorker, zap.NewNop())(okHandler(t, entity.RoleWorker)),
		)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/x/accept", nil)
	req.Header.Set(UserIDHeader, worker.ID.String())
	rec := httptest.NewRecorder()
	chain().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/jobs/x/accept", nil)
	req.Header.Set(UserIDHeader, seeker.ID.String())
	rec = httptest.NewRecorder()
	chain().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// without ActingUser in front there is no one to check
	rec = httptest.NewRecorder()
	RequireRole(entity.RoleWorker, zap.NewNop())(okHandler(t, entity.RoleWorker)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestLogger_PassesThrough(t *testing.T) {
	h := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
