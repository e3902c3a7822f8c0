package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/clientdesk/clientdesk/internal/auth"
	"github.com/clientdesk/clientdesk/internal/common"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// RequireAuth gates downstream routes behind bearer token verification.
// Requests without a valid Authorization header are rejected before any
// business logic runs; verified claims are placed in the request context.
func RequireAuth(issuer *auth.TokenIssuer, logger *common.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				WriteMessage(w, http.StatusUnauthorized, "Authorization token required.")
				return
			}

			claims, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				if logger != nil {
					logger.Warn().Str("path", r.URL.Path).Msg("rejected invalid bearer token")
				}
				WriteMessage(w, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the verified claims placed by RequireAuth,
// or nil when the request was not authenticated.
func ClaimsFromContext(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsContextKey).(*auth.Claims)
	return claims
}
