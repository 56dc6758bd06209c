package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/hirejoy/pkg/jwtx"
	"github.com/aussiebroadwan/hirejoy/pkg/slogx"
)

// SessionCheck decides whether verified claims still belong to a live
// session. It runs after signature and expiry checks.
type SessionCheck func(ctx context.Context, c jwtx.Claims) error

func AuthnMiddleware(v jwtx.Verifier, check SessionCheck) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("jwt verify failed", "err", err)
				return
			}

			if check != nil {
				if err := check(ctx, claims); err != nil {
					writeBearerError(w, "session is no longer active")
					log.Info("stale session token", "sid", claims.SID, "err", err)
					return
				}
			}

			ctx = contextWithAuth(ctx, claims)
			ctx = slogx.WithAttrs(ctx, "sid", claims.SID, "role", claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
