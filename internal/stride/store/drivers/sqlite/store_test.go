package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/store"
	"github.com/strideapp/stride/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s *Store, role domain.Role) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     "runner-" + idx.New().String(),
		Email:        fmt.Sprintf("%s@example.com", idx.New()),
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashno",
		Role:         role,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create and fetch by id and email", func(t *testing.T) {
		s := newTestStore(t)
		u := seedUser(t, s, domain.RoleUser)

		byID, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)
		require.Equal(t, domain.RoleUser, byID.Role)

		byEmail, err := s.Users().GetUserByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		s := newTestStore(t)
		u := seedUser(t, s, domain.RoleUser)

		dup := u
		dup.ID = idx.New().String()
		err := s.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("missing user maps to ErrNotFound", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)

		err = s.Users().DeleteUser(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update rewrites role and email", func(t *testing.T) {
		s := newTestStore(t)
		u := seedUser(t, s, domain.RoleUser)

		u.Role = domain.RoleAdmin
		u.Email = "promoted@example.com"
		require.NoError(t, s.Users().UpdateUser(ctx, u))

		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, got.Role)
		require.Equal(t, "promoted@example.com", got.Email)
	})
}

func TestExercisesRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name is rejected", func(t *testing.T) {
		s := newTestStore(t)

		e := domain.Exercise{
			ID:         idx.New().String(),
			Name:       "Morning Run",
			Type:       domain.ExerciseCardio,
			Difficulty: domain.DifficultyMedium,
		}
		require.NoError(t, s.Exercises().CreateExercise(ctx, e))

		dup := e
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Exercises().CreateExercise(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		s := newTestStore(t)

		for _, name := range []string{"Squats", "Burpees", "Plank"} {
			require.NoError(t, s.Exercises().CreateExercise(ctx, domain.Exercise{
				ID:         idx.New().String(),
				Name:       name,
				Type:       domain.ExerciseStrength,
				Difficulty: domain.DifficultyHard,
			}))
		}

		got, err := s.Exercises().ListExercises(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, "Burpees", got[0].Name)
		require.Equal(t, "Squats", got[2].Name)
	})
}

func TestCalendarRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("steps-only entry keeps exercise_id null", func(t *testing.T) {
		s := newTestStore(t)
		u := seedUser(t, s, domain.RoleUser)

		e := domain.CalendarEntry{
			ID:        idx.New().String(),
			UserID:    u.ID,
			EntryDate: "2026-08-30",
			Steps:     9200,
		}
		require.NoError(t, s.CalendarEntries().CreateEntry(ctx, e))

		got, err := s.CalendarEntries().GetEntryByID(ctx, e.ID)
		require.NoError(t, err)
		require.Empty(t, got.ExerciseID)
		require.EqualValues(t, 9200, got.Steps)
	})

	t.Run("entries referencing unknown users are rejected", func(t *testing.T) {
		s := newTestStore(t)

		err := s.CalendarEntries().CreateEntry(ctx, domain.CalendarEntry{
			ID:        idx.New().String(),
			UserID:    idx.New().String(),
			EntryDate: "2026-08-30",
		})
		require.Error(t, err)
	})

	t.Run("list returns only the owner's entries, newest first", func(t *testing.T) {
		s := newTestStore(t)
		owner := seedUser(t, s, domain.RoleUser)
		other := seedUser(t, s, domain.RoleUser)

		for _, date := range []string{"2026-08-28", "2026-08-30", "2026-08-29"} {
			require.NoError(t, s.CalendarEntries().CreateEntry(ctx, domain.CalendarEntry{
				ID:        idx.New().String(),
				UserID:    owner.ID,
				EntryDate: date,
			}))
		}
		require.NoError(t, s.CalendarEntries().CreateEntry(ctx, domain.CalendarEntry{
			ID:        idx.New().String(),
			UserID:    other.ID,
			EntryDate: "2026-08-30",
		}))

		got, err := s.CalendarEntries().ListEntriesByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, "2026-08-30", got[0].EntryDate)
		require.Equal(t, "2026-08-28", got[2].EntryDate)
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("rolls back on error", func(t *testing.T) {
		s := newTestStore(t)

		id := idx.New().String()
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().CreateUser(ctx, domain.User{
				ID:           id,
				Username:     "ghost",
				Email:        "ghost@example.com",
				PasswordHash: "x",
				Role:         domain.RoleUser,
			}); err != nil {
				return err
			}
			return fmt.Errorf("boom")
		})
		require.Error(t, err)

		_, err = s.Users().GetUserByID(ctx, id)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("user deletion cascades entries atomically", func(t *testing.T) {
		s := newTestStore(t)
		u := seedUser(t, s, domain.RoleUser)

		require.NoError(t, s.CalendarEntries().CreateEntry(ctx, domain.CalendarEntry{
			ID:        idx.New().String(),
			UserID:    u.ID,
			EntryDate: "2026-08-30",
		}))

		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.CalendarEntries().DeleteEntriesByUser(ctx, u.ID); err != nil {
				return err
			}
			return tx.Users().DeleteUser(ctx, u.ID)
		})
		require.NoError(t, err)

		_, err = s.Users().GetUserByID(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		entries, err := s.CalendarEntries().ListEntriesByUser(ctx, u.ID)
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}
