package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/store"
	"github.com/strideapp/stride/pkg/idx"
)

var ErrUnknownExercise = errors.New("unknown_exercise")

// CalendarService manages per-user daily entries. Every operation is scoped
// to the calling user: entries owned by someone else behave as if they do
// not exist.
type CalendarService struct {
	Store store.Store
}

func NewCalendarService(st store.Store) *CalendarService {
	return &CalendarService{Store: st}
}

func (s *CalendarService) Get(ctx context.Context, userID, entryID string) (domain.CalendarEntry, error) {
	e, err := s.Store.CalendarEntries().GetEntryByID(ctx, entryID)
	if err != nil {
		return domain.CalendarEntry{}, err
	}
	if e.UserID != userID {
		return domain.CalendarEntry{}, store.ErrNotFound
	}
	return e, nil
}

func (s *CalendarService) List(ctx context.Context, userID string) ([]domain.CalendarEntry, error) {
	return s.Store.CalendarEntries().ListEntriesByUser(ctx, userID)
}

func (s *CalendarService) Create(ctx context.Context, userID, entryDate, exerciseID string, steps int64, notes string) (domain.CalendarEntry, error) {
	if err := s.checkExercise(ctx, exerciseID); err != nil {
		return domain.CalendarEntry{}, err
	}

	e := domain.CalendarEntry{
		ID:         idx.New().String(),
		UserID:     userID,
		EntryDate:  entryDate,
		ExerciseID: exerciseID,
		Steps:      steps,
		Notes:      notes,
	}

	if err := s.Store.CalendarEntries().CreateEntry(ctx, e); err != nil {
		return domain.CalendarEntry{}, fmt.Errorf("create calendar entry: %w", err)
	}

	return e, nil
}

func (s *CalendarService) Update(ctx context.Context, userID, entryID, entryDate, exerciseID string, steps int64, notes string) (domain.CalendarEntry, error) {
	e, err := s.Get(ctx, userID, entryID)
	if err != nil {
		return domain.CalendarEntry{}, err
	}

	if err := s.checkExercise(ctx, exerciseID); err != nil {
		return domain.CalendarEntry{}, err
	}

	e.EntryDate = entryDate
	e.ExerciseID = exerciseID
	e.Steps = steps
	e.Notes = notes

	if err := s.Store.CalendarEntries().UpdateEntry(ctx, e); err != nil {
		return domain.CalendarEntry{}, err
	}

	return e, nil
}

func (s *CalendarService) Delete(ctx context.Context, userID, entryID string) error {
	if _, err := s.Get(ctx, userID, entryID); err != nil {
		return err
	}
	return s.Store.CalendarEntries().DeleteEntry(ctx, entryID)
}

func (s *CalendarService) checkExercise(ctx context.Context, exerciseID string) error {
	if exerciseID == "" {
		return nil
	}
	if _, err := s.Store.Exercises().GetExerciseByID(ctx, exerciseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownExercise
		}
		return err
	}
	return nil
}
