package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/strideapp/stride/pkg/jwtx"
	"github.com/strideapp/stride/pkg/slogx"
)

// ErrPrincipalNotFound is returned by a PrincipalResolver when the token's
// subject no longer exists in the user directory.
var ErrPrincipalNotFound = errors.New("httpx: principal not found")

// PrincipalResolver loads the principal behind a verified token subject.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, subject string) (Principal, error)
}

// AuthnMiddleware authenticates requests: it extracts the bearer token,
// verifies it, resolves the subject against the user directory, and injects
// the principal and token scopes into the request context. Every failure
// mode short-circuits with a 401; resolution has no side effects besides
// the directory read.
func AuthnMiddleware(v jwtx.Verifier, resolver PrincipalResolver) Middleware {
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
				log.Warn("token verification failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			if claims.Subject == "" {
				writeBearerError(w, "token has no subject")
				return
			}

			principal, err := resolver.ResolvePrincipal(ctx, claims.Subject)
			if err != nil {
				if !errors.Is(err, ErrPrincipalNotFound) {
					log.Error("principal lookup failed", "subject", claims.Subject, "err", err)
				}
				writeBearerError(w, "unknown subject")
				return
			}

			ctx = context.WithValue(ctx, ctxKeyPrincipal, principal)
			ctx = context.WithValue(ctx, ctxKeyScopes, claims.Scopes)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"invalid_token","error_description":"` + desc + `"}`))
}
