package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/store"
)

func TestCalendarService(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*CalendarService, domain.User, domain.User) {
		st := newTestStore(t)
		users := NewUserService(st)

		alice, err := users.Create(ctx, "alice", "alice@example.com", "super secret pass", domain.RoleUser)
		require.NoError(t, err)
		bob, err := users.Create(ctx, "bob", "bob@example.com", "super secret pass", domain.RoleUser)
		require.NoError(t, err)

		return NewCalendarService(st), alice, bob
	}

	t.Run("entries are invisible to other users", func(t *testing.T) {
		calendar, alice, bob := setup(t)

		entry, err := calendar.Create(ctx, alice.ID, "2026-08-30", "", 8000, "easy day")
		require.NoError(t, err)

		_, err = calendar.Get(ctx, bob.ID, entry.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		err = calendar.Delete(ctx, bob.ID, entry.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		// Owner still sees it.
		got, err := calendar.Get(ctx, alice.ID, entry.ID)
		require.NoError(t, err)
		require.EqualValues(t, 8000, got.Steps)
	})

	t.Run("unknown exercise references are rejected", func(t *testing.T) {
		calendar, alice, _ := setup(t)

		_, err := calendar.Create(ctx, alice.ID, "2026-08-30", "01K0000000000000000000TEST", 0, "")
		require.ErrorIs(t, err, ErrUnknownExercise)
	})

	t.Run("update keeps ownership checks", func(t *testing.T) {
		calendar, alice, bob := setup(t)

		entry, err := calendar.Create(ctx, alice.ID, "2026-08-30", "", 8000, "")
		require.NoError(t, err)

		_, err = calendar.Update(ctx, bob.ID, entry.ID, "2026-08-31", "", 100, "hijacked")
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := calendar.Update(ctx, alice.ID, entry.ID, "2026-08-31", "", 12000, "long walk")
		require.NoError(t, err)
		require.Equal(t, "2026-08-31", got.EntryDate)
		require.EqualValues(t, 12000, got.Steps)
	})
}
