package middleware

import (
	"net/http"
	"strings"

	"clicksafe/pkg/token"
	"clicksafe/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token and attaches the account identity to the
// request context. Tokens are self-contained, so no store lookup happens
// here; a deleted account is only noticed by the handler behind it.
func Auth(tokens *token.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "No token provided")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				utils.ResponseUnauthorized(w, "No token provided")
				return
			}

			accountID, email, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Rejected bearer token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetAccountContext(r.Context(), accountID, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
