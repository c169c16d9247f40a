package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/strideapp/stride/internal/stride/domain"
	sqlitestore "github.com/strideapp/stride/internal/stride/store/drivers/sqlite"
	"github.com/strideapp/stride/pkg/jwtx"
)

func newTestStore(t *testing.T) *sqlitestore.Store {
	t.Helper()

	s, err := sqlitestore.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestCodec(t *testing.T) *jwtx.Codec {
	t.Helper()

	codec, err := jwtx.NewCodec([]byte("test-secret-please-rotate"), "stride-test", 30*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	return codec
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with the user role", func(t *testing.T) {
		auth := NewAuthService(newTestStore(t), newTestCodec(t))

		user, err := auth.Register(ctx, "alice", "alice@example.com", "correct horse battery")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, domain.RoleUser, user.Role)
		require.NotEqual(t, "correct horse battery", user.PasswordHash)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		auth := NewAuthService(newTestStore(t), newTestCodec(t))

		_, err := auth.Register(ctx, "alice", "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		_, err = auth.Register(ctx, "mallory", "alice@example.com", "different password")
		require.ErrorIs(t, err, ErrEmailInUse)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("returns both tokens on success", func(t *testing.T) {
		codec := newTestCodec(t)
		auth := NewAuthService(newTestStore(t), codec)

		user, err := auth.Register(ctx, "alice", "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		pair, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, "Bearer", pair.TokenType)
		require.NotEmpty(t, pair.RefreshToken)

		claims, err := codec.Verify(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, []string{"user"}, claims.Scopes)

		refreshClaims, err := codec.Verify(pair.RefreshToken)
		require.NoError(t, err)
		require.Empty(t, refreshClaims.Scopes)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		auth := NewAuthService(newTestStore(t), newTestCodec(t))

		_, err := auth.Register(ctx, "alice", "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		_, errUnknown := auth.Login(ctx, "nobody@example.com", "whatever")
		_, errWrong := auth.Login(ctx, "alice@example.com", "wrong password")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("mints an access token carrying the current role", func(t *testing.T) {
		st := newTestStore(t)
		codec := newTestCodec(t)
		auth := NewAuthService(st, codec)
		users := NewUserService(st)

		user, err := auth.Register(ctx, "alice", "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		pair, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		// Promote after login; the next refreshed access token should
		// carry the new role.
		role := domain.RoleAdmin
		_, err = users.Update(ctx, user.ID, nil, nil, &role)
		require.NoError(t, err)

		refreshed, err := auth.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		require.Empty(t, refreshed.RefreshToken)

		claims, err := codec.Verify(refreshed.AccessToken)
		require.NoError(t, err)
		require.Equal(t, []string{"admin"}, claims.Scopes)
	})

	t.Run("rejects garbage and deleted-user tokens", func(t *testing.T) {
		st := newTestStore(t)
		codec := newTestCodec(t)
		auth := NewAuthService(st, codec)

		_, err := auth.Refresh(ctx, "not.a.token")
		require.ErrorIs(t, err, ErrInvalidToken)

		user, err := auth.Register(ctx, "alice", "alice@example.com", "correct horse battery")
		require.NoError(t, err)
		pair, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		require.NoError(t, NewUserService(st).Delete(ctx, user.ID))

		_, err = auth.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
