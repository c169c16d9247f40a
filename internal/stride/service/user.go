package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/store"
	"github.com/strideapp/stride/pkg/cryptox"
	"github.com/strideapp/stride/pkg/idx"
	"github.com/strideapp/stride/pkg/slogx"
)

var ErrInvalidRole = errors.New("invalid_role")

// UserService covers the admin-facing account operations. Self-service
// registration lives on AuthService.
type UserService struct {
	Store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{Store: st}
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Create provisions an account with an explicit role. Used by admins; the
// same email-uniqueness rules as registration apply.
func (s *UserService) Create(ctx context.Context, username, email, password string, role domain.Role) (domain.User, error) {
	if !role.Valid() {
		return domain.User{}, ErrInvalidRole
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
		Role:         role,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailInUse
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user created", slog.String("user_id", user.ID), slog.String("role", string(role)))
	return user, nil
}

// Update applies the non-nil fields. Role changes only affect tokens minted
// afterwards; outstanding access tokens keep their old scopes until expiry.
func (s *UserService) Update(ctx context.Context, id string, username, email *string, role *domain.Role) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if username != nil {
		user.Username = *username
	}
	if email != nil {
		user.Email = *email
	}
	if role != nil {
		if !role.Valid() {
			return domain.User{}, ErrInvalidRole
		}
		user.Role = *role
	}

	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailInUse
		}
		return domain.User{}, err
	}

	return user, nil
}

// UpdatePassword re-hashes and stores a new password for the user.
func (s *UserService) UpdatePassword(ctx context.Context, id, newPassword string) error {
	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.Store.Users().UpdatePasswordHash(ctx, id, hash)
}

// Delete removes the user and all their calendar entries in one transaction.
func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.CalendarEntries().DeleteEntriesByUser(ctx, id); err != nil {
			return fmt.Errorf("delete calendar entries: %w", err)
		}
		return tx.Users().DeleteUser(ctx, id)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user deleted", slog.String("user_id", id))
	return nil
}
