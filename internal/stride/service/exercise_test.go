package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strideapp/stride/internal/stride/domain"
)

func TestExerciseService(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate names surface as ErrExerciseExists", func(t *testing.T) {
		exercises := NewExerciseService(newTestStore(t))

		_, err := exercises.Create(ctx, "Morning Run", domain.ExerciseCardio, domain.DifficultyMedium, "5k around the park")
		require.NoError(t, err)

		_, err = exercises.Create(ctx, "Morning Run", domain.ExerciseCardio, domain.DifficultyEasy, "")
		require.ErrorIs(t, err, ErrExerciseExists)
	})

	t.Run("unknown enums are rejected", func(t *testing.T) {
		exercises := NewExerciseService(newTestStore(t))

		_, err := exercises.Create(ctx, "Yoga", domain.ExerciseType("mindfulness"), domain.DifficultyEasy, "")
		require.ErrorIs(t, err, ErrInvalidExercise)

		_, err = exercises.Create(ctx, "Yoga", domain.ExerciseFlexibility, domain.Difficulty("brutal"), "")
		require.ErrorIs(t, err, ErrInvalidExercise)
	})

	t.Run("update rewrites the catalog entry", func(t *testing.T) {
		exercises := NewExerciseService(newTestStore(t))

		e, err := exercises.Create(ctx, "Plank", domain.ExerciseStrength, domain.DifficultyEasy, "")
		require.NoError(t, err)

		got, err := exercises.Update(ctx, e.ID, "Plank", domain.ExerciseStrength, domain.DifficultyHard, "3 minute hold")
		require.NoError(t, err)
		require.Equal(t, domain.DifficultyHard, got.Difficulty)
		require.Equal(t, "3 minute hold", got.Description)
	})
}
