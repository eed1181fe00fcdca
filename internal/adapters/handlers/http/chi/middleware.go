package chi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware is a custom logging middleware
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if r.URL.Path != "/health" {

					l.Info("http_request",
						"request_id", middleware.GetReqID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"status", ww.Status(),
						"duration", time.Since(start),
					)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

type contextKey string

const (
	usernameKey contextKey = "auth_username"
	rolesKey    contextKey = "auth_roles"
)

// AuthMiddleware rejects requests without a valid bearer token and stashes
// the username and roles into the request context.
func AuthMiddleware(verifier port.AuthService, l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			username, roles, err := verifier.Verify(token)
			if err != nil {
				l.Info("rejected token", "error", err)
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			ctx = context.WithValue(ctx, rolesKey, roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the authenticated username, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

// RolesFromContext returns the authenticated user's roles, if any.
func RolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(rolesKey).([]string)
	return roles, ok
}
