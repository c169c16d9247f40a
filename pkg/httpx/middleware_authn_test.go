package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/strideapp/stride/pkg/jwtx"
)

type stubResolver struct {
	known map[string]Principal
}

func (s *stubResolver) ResolvePrincipal(_ context.Context, subject string) (Principal, error) {
	if p, ok := s.known[subject]; ok {
		return p, nil
	}
	return Principal{}, ErrPrincipalNotFound
}

func newAuthnFixture(t *testing.T) (*jwtx.Codec, http.Handler) {
	t.Helper()

	codec, err := jwtx.NewCodec([]byte("test-secret-please-rotate"), "stride-test", 30*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	resolver := &stubResolver{known: map[string]Principal{
		"user-1": {ID: "user-1", Username: "alice", Email: "alice@example.com", Role: "user"},
	}}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return codec, Chain(inner, AuthnMiddleware(codec, resolver))
}

func TestAuthnMiddleware(t *testing.T) {
	t.Run("valid token injects the principal", func(t *testing.T) {
		codec, err := jwtx.NewCodec([]byte("test-secret-please-rotate"), "stride-test", 30*time.Minute, 7*24*time.Hour)
		require.NoError(t, err)

		resolver := &stubResolver{known: map[string]Principal{
			"user-1": {ID: "user-1", Username: "alice", Role: "user"},
		}}

		var got Principal
		var gotScopes []string
		handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = PrincipalFromContext(r.Context())
			gotScopes = ScopesFromContext(r.Context())
		}), AuthnMiddleware(codec, resolver))

		token, err := codec.SignAccess("user-1", []string{"user"}, time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", got.ID)
		require.Equal(t, "alice", got.Username)
		require.Equal(t, []string{"user"}, gotScopes)
	})

	t.Run("missing header gets a bearer challenge", func(t *testing.T) {
		_, handler := newAuthnFixture(t)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		codec, handler := newAuthnFixture(t)

		token, err := codec.SignAccess("user-1", []string{"user"}, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown subject is rejected", func(t *testing.T) {
		codec, handler := newAuthnFixture(t)

		token, err := codec.SignAccess("nobody", []string{"user"}, time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAnyScope(t *testing.T) {
	handler := func(scopes []string, required ...string) *httptest.ResponseRecorder {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), ctxKeyScopes, scopes))
		rec := httptest.NewRecorder()
		Chain(inner, RequireAnyScope(required...)).ServeHTTP(rec, req)
		return rec
	}

	t.Run("any matching scope admits", func(t *testing.T) {
		require.Equal(t, http.StatusOK, handler([]string{"user"}, "user", "admin").Code)
		require.Equal(t, http.StatusOK, handler([]string{"admin"}, "user", "admin").Code)
	})

	t.Run("missing scope is a 403", func(t *testing.T) {
		rec := handler([]string{"user"}, "admin")
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="insufficient_scope"`)
	})

	t.Run("no scopes at all is a 403", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, handler(nil, "user").Code)
	})
}
