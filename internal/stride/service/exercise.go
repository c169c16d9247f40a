package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/store"
	"github.com/strideapp/stride/pkg/idx"
)

var (
	ErrExerciseExists  = errors.New("exercise_exists")
	ErrInvalidExercise = errors.New("invalid_exercise")
)

// ExerciseService manages the shared exercise catalog, which every
// authenticated user can read and edit.
type ExerciseService struct {
	Store store.Store
}

func NewExerciseService(st store.Store) *ExerciseService {
	return &ExerciseService{Store: st}
}

func (s *ExerciseService) Get(ctx context.Context, id string) (domain.Exercise, error) {
	return s.Store.Exercises().GetExerciseByID(ctx, id)
}

func (s *ExerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	return s.Store.Exercises().ListExercises(ctx)
}

func (s *ExerciseService) Create(ctx context.Context, name string, typ domain.ExerciseType, difficulty domain.Difficulty, description string) (domain.Exercise, error) {
	if !typ.Valid() || !difficulty.Valid() {
		return domain.Exercise{}, ErrInvalidExercise
	}

	e := domain.Exercise{
		ID:          idx.New().String(),
		Name:        name,
		Type:        typ,
		Difficulty:  difficulty,
		Description: description,
	}

	if err := s.Store.Exercises().CreateExercise(ctx, e); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Exercise{}, ErrExerciseExists
		}
		return domain.Exercise{}, fmt.Errorf("create exercise: %w", err)
	}

	return e, nil
}

func (s *ExerciseService) Update(ctx context.Context, id, name string, typ domain.ExerciseType, difficulty domain.Difficulty, description string) (domain.Exercise, error) {
	if !typ.Valid() || !difficulty.Valid() {
		return domain.Exercise{}, ErrInvalidExercise
	}

	e, err := s.Store.Exercises().GetExerciseByID(ctx, id)
	if err != nil {
		return domain.Exercise{}, err
	}

	e.Name = name
	e.Type = typ
	e.Difficulty = difficulty
	e.Description = description

	if err := s.Store.Exercises().UpdateExercise(ctx, e); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Exercise{}, ErrExerciseExists
		}
		return domain.Exercise{}, err
	}

	return e, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id string) error {
	return s.Store.Exercises().DeleteExercise(ctx, id)
}
