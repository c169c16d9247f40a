package domain

import "time"

// TokenPair is what the login endpoint returns: a short-lived access token
// and a longer-lived refresh token, both stateless JWTs. The refresh
// endpoint reuses this shape with RefreshToken left empty.
type TokenPair struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	TokenType    string        `json:"token_type"` // always "Bearer"
	ExpiresIn    time.Duration `json:"expires_in"` // access token lifetime
}
