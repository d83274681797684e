package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/guardapp/contacts-api/internal/token"
	"github.com/guardapp/contacts-api/internal/utils"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsFromContext returns the verified token claims attached by Auth.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}

// Auth rejects requests without a valid bearer token before the handler runs.
func Auth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			auth := r.Header.Get("Authorization")
			if auth == "" {
				utils.JSONError(w, http.StatusUnauthorized, "não autorizado")
				return
			}

			parts := strings.SplitN(auth, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				utils.JSONError(w, http.StatusUnauthorized, "não autorizado")
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				utils.JSONError(w, http.StatusUnauthorized, "não autorizado")
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "não autorizado")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
