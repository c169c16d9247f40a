package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/store"
	"github.com/strideapp/stride/pkg/cryptox"
	"github.com/strideapp/stride/pkg/idx"
	"github.com/strideapp/stride/pkg/jwtx"
	"github.com/strideapp/stride/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailInUse         = errors.New("email_in_use")
	ErrInvalidToken       = errors.New("invalid_token")
)

// AuthService owns registration, login, and token refresh. Tokens are
// stateless JWTs signed by the codec; nothing token-related is persisted.
type AuthService struct {
	Store store.Store
	Codec *jwtx.Codec
}

func NewAuthService(st store.Store, codec *jwtx.Codec) *AuthService {
	return &AuthService{Store: st, Codec: codec}
}

// Register creates a new account with the "user" role. The email must not
// be taken; a unique index backstops the pre-check against races.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailInUse
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailInUse
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login verifies the email/password pair and mints an access plus refresh
// token. Unknown email and wrong password fail identically so the endpoint
// does not leak which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.TokenPair{}, fmt.Errorf("fetch user: %w", err)
	}

	if err := cryptox.CheckPassword(password, user.PasswordHash); err != nil {
		log.Warn("failed login attempt", slog.String("user_id", user.ID))
		return domain.TokenPair{}, ErrInvalidCredentials
	}

	now := time.Now()
	access, err := s.Codec.SignAccess(user.ID, []string{string(user.Role)}, now)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.Codec.SignRefresh(user.ID, now)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    s.Codec.AccessTTL(),
	}, nil
}

// Refresh verifies a refresh token and mints a fresh access token carrying
// the user's CURRENT role, so a role change takes effect without re-login.
// The refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	claims, err := s.Codec.Verify(refreshToken)
	if err != nil {
		return domain.TokenPair{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidToken
		}
		return domain.TokenPair{}, fmt.Errorf("fetch user: %w", err)
	}

	access, err := s.Codec.SignAccess(user.ID, []string{string(user.Role)}, time.Now())
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	return domain.TokenPair{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   s.Codec.AccessTTL(),
	}, nil
}
