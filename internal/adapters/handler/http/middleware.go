package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/eventojovem/api/internal/core/ports"
)

type contextKey string

const callerKey contextKey = "caller"

// Authenticator extracts and verifies the bearer token, storing the decoded
// caller in the request context. Role and ownership checks stay in the
// handlers; this middleware only establishes identity.
func Authenticator(authService ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, domain.ErrUnauthenticated)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, domain.ErrUnauthenticated)
				return
			}

			caller, err := authService.VerifyToken(token)
			if err != nil {
				writeError(w, domain.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, *caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func callerFromContext(ctx context.Context) (ports.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(ports.Caller)
	return caller, ok
}
