package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
	"she-fix/internal/data/repository"
	"she-fix/pkg/utils"
)

// UserIDHeader names the acting user on job mutations.
const UserIDHeader = "X-User-ID"

// ActingUser resolves the X-User-ID header to a stored user and puts its id and
// role into the request context. It identifies the caller; it does not authenticate.
func ActingUser(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if raw == "" {
				utils.ResponseUnauthorized(w, "Missing "+UserIDHeader+" header")
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid "+UserIDHeader+" header")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve acting user",
					zap.String("user_id", raw),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Unknown acting user", zap.String("user_id", raw))
				utils.ResponseUnauthorized(w, "Unknown user")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must run after ActingUser.
func RequireRole(role entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Acting user required")
				return
			}

			actual, _ := utils.GetRoleFromContext(r.Context())
			if actual != string(role) {
				logger.Warn("Role check failed",
					zap.String("user_id", userID.String()),
					zap.String("role", actual),
					zap.String("required", string(role)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Only "+string(role)+"s can do this")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
