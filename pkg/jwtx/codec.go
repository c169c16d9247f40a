// Package jwtx signs and verifies the service's bearer tokens. Tokens are
// compact JWTs signed with a shared HS256 secret; validity is determined
// purely by signature and expiry, nothing is persisted.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrAlgMismatch  = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Verifier validates a token string and returns its claims if legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Codec issues and verifies HS256-signed tokens with a shared secret.
type Codec struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewCodec builds a Codec. The secret must be non-empty; TTLs of zero or
// below fall back to the package defaults.
func NewCodec(secret []byte, issuer string, accessTTL, refreshTTL time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}

	return &Codec{
		secret:     secret,
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// AccessTTL reports the configured access token lifetime.
func (c *Codec) AccessTTL() time.Duration { return c.accessTTL }

// SignAccess mints a short-lived access token carrying the subject's
// granted scopes.
func (c *Codec) SignAccess(subject string, scopes []string, now time.Time) (string, error) {
	return c.sign(newClaims(subject, c.issuer, scopes, c.accessTTL, now))
}

// SignRefresh mints a longer-lived refresh token. It carries the subject
// only; scopes are re-derived from the directory at refresh time.
func (c *Codec) SignRefresh(subject string, now time.Time) (string, error) {
	return c.sign(newClaims(subject, c.issuer, nil, c.refreshTTL, now))
}

func (c *Codec) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature, structure, issuer, and expiry. Failures are
// purely cryptographic/structural; business rules live in the services.
func (c *Codec) Verify(token string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return c.secret, nil
	},
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	default:
		return ErrInvalidClaim
	}
}
