package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/remetra/backend/internal/apperr"
	"github.com/remetra/backend/internal/auth"
	"github.com/remetra/backend/internal/httpx"
)

type contextKey string

const usernameKey contextKey = "username"

// Username returns the authenticated username injected by RequireAuth,
// or "" when the request was not authenticated.
func Username(ctx context.Context) string {
	v, _ := ctx.Value(usernameKey).(string)
	return v
}

// RequireAuth validates the bearer token on the Authorization header and
// injects the account's username into the request context.
func RequireAuth(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := svc.CurrentUser(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, apperr.ErrUnauthorized) {
					w.Header().Set("WWW-Authenticate", "Bearer")
					httpx.WriteError(w, http.StatusUnauthorized, "could not validate credentials")
					return
				}
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
