package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"cms/internal/auth"
	"cms/internal/domain"
	"cms/internal/httputil"
)

// RequireAdmin rejects requests without a valid admin bearer token and puts
// the admin id from the token subject into the request context
func RequireAdmin(verifier auth.JWTVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					httputil.RespondError(w, http.StatusForbidden, "admin role required")
					return
				}
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			adminID, err := claims.AdminID()
			if err != nil {
				logger.Warn("verified token without admin id", "subject", claims.Subject)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, httputil.WithAdminID(r, adminID))
		})
	}
}
