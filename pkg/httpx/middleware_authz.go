package httpx

import (
	"net/http"
	"slices"
	"strings"
)

// RequireRole the caller's session must carry one of the provided roles.
func RequireRole(allowed ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := ClaimsFromContext(r.Context())
			if ok && slices.Contains(allowed, c.Role) {
				next.ServeHTTP(w, r)
				return
			}

			WriteJSON(w, http.StatusForbidden, map[string]string{
				"error":             "forbidden",
				"error_description": "requires role " + strings.Join(allowed, " or "),
			})
		})
	}
}
