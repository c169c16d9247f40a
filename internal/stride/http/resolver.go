package http

import (
	"context"
	"errors"

	"github.com/strideapp/stride/internal/stride/store"
	"github.com/strideapp/stride/pkg/httpx"
)

// directoryResolver resolves token subjects against the user store so the
// authn middleware can attach a live principal to each request. A subject
// whose account was deleted after the token was minted resolves to
// ErrPrincipalNotFound and the request fails authentication.
type directoryResolver struct {
	store store.Store
}

var _ httpx.PrincipalResolver = (*directoryResolver)(nil)

func (r *directoryResolver) ResolvePrincipal(ctx context.Context, subject string) (httpx.Principal, error) {
	user, err := r.store.Users().GetUserByID(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httpx.Principal{}, httpx.ErrPrincipalNotFound
		}
		return httpx.Principal{}, err
	}

	return httpx.Principal{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}, nil
}
