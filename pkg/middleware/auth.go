package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/refilllocal/directory/modules/directory/services"
	"github.com/refilllocal/directory/pkg/composables"
	"github.com/refilllocal/directory/pkg/httpapi"
)

// Authorize resolves the Bearer token to an operator and stores it in the
// request context. Requests without a valid token are rejected with 401.
// Must run after WithLogger.
func Authorize(auth *services.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			op, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logger := composables.UseLogger(r.Context())
				if ip, ok := composables.UseIP(r.Context()); ok {
					logger = logger.WithField("ip", ip)
				}
				logger.Warn("rejected request with invalid API token")
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(composables.WithOperator(r.Context(), op)))
		})
	}
}

// RequireAdmin rejects authenticated but non-admin operators with 403.
// Must run after Authorize.
func RequireAdmin() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op, err := composables.UseOperator(r.Context())
			if err != nil {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
				return
			}
			if !op.IsAdmin() {
				_ = httpapi.WriteError(w, http.StatusForbidden, "FORBIDDEN", "administrator access required", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
