package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"portfolio/internal/domain"
	obsmw "portfolio/internal/observability/middleware"
	"portfolio/internal/service"
)

type userIDKey struct{}

// RequireAuth validates the bearer token and stores the subject user ID in
// the request context.
func RequireAuth(tokens service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := obsmw.RequestIDFromContext(r.Context())
			raw := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
				writeError(w, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized))
				slog.Warn("auth missing bearer", "request_id", reqID)
				return
			}
			tokStr := strings.TrimSpace(raw[len("Bearer "):])

			userID, err := tokens.Verify(tokStr)
			if err != nil {
				writeError(w, err)
				slog.Warn("auth invalid token", "error", err, "request_id", reqID)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserIDFrom(ctx context.Context) (domain.UserID, bool) {
	v, ok := ctx.Value(userIDKey{}).(domain.UserID)
	return v, ok
}
