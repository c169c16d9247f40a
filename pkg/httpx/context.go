package httpx

import "context"

// Principal is the resolved authenticated identity handed to request
// handlers. It is a read-only snapshot, re-resolved on every request.
type Principal struct {
	ID       string
	Username string
	Email    string
	Role     string
}

type ctxKey string

const (
	ctxKeyPrincipal ctxKey = "principal"
	ctxKeyScopes    ctxKey = "scopes"
)

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(Principal)
	return p, ok
}

// ScopesFromContext returns the scopes carried by the verified token.
func ScopesFromContext(ctx context.Context) []string {
	if v, ok := ctx.Value(ctxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
