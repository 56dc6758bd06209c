package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/hirejoy/pkg/httpx"
	"github.com/aussiebroadwan/hirejoy/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var trail []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trail = append(trail, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		trail = append(trail, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, trail)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	t.Run("decodes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"jane"}`))
		require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
		require.Equal(t, "jane", v.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		require.ErrorIs(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v), httpx.ErrEmptyBody)
	})

	t.Run("unknown fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nick":"j"}`))
		require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
	})
}

func signed(t *testing.T, k *jwtx.EdDSAKey, sid, role string) string {
	t.Helper()
	tok, err := k.Sign(jwtx.NewSessionClaims("user-1", sid, role, "", "", "", "hirejoy", time.Hour, time.Now()))
	require.NoError(t, err)
	return tok
}

func TestAuthnMiddleware(t *testing.T) {
	k, err := jwtx.NewEdDSAKey("k1", "hirejoy")
	require.NoError(t, err)

	errStale := errors.New("stale")
	check := func(_ context.Context, c jwtx.Claims) error {
		if c.SID != "live" {
			return errStale
		}
		return nil
	}

	var seen jwtx.Claims
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = httpx.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}), httpx.AuthnMiddleware(k, check))

	serve := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing header", func(t *testing.T) {
		rec := serve("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("bad token", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, serve("Bearer nope").Code)
	})

	t.Run("stale session", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, serve("Bearer "+signed(t, k, "old", "HR")).Code)
	})

	t.Run("live session", func(t *testing.T) {
		rec := serve("Bearer " + signed(t, k, "live", "HR"))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "live", seen.SID)
		require.Equal(t, "user-1", seen.Subject)
	})
}

func TestRequireRole(t *testing.T) {
	k, err := jwtx.NewEdDSAKey("k1", "hirejoy")
	require.NoError(t, err)

	h := httpx.Chain(okHandler(), httpx.AuthnMiddleware(k, nil), httpx.RequireRole("HR"))

	serve := func(role string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, k, "s", role))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, serve("HR"))
	require.Equal(t, http.StatusForbidden, serve("COMPANY"))
}
