package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/store"
)

type calendarRepo struct {
	q execer
}

var _ store.CalendarEntries = (*calendarRepo)(nil)

func (r *calendarRepo) GetEntryByID(ctx context.Context, id string) (domain.CalendarEntry, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, entry_date, exercise_id, steps, notes, created_at, updated_at
		FROM calendar_entries WHERE id = ?`, id)
	return scanEntry(row)
}

func (r *calendarRepo) ListEntriesByUser(ctx context.Context, userID string) ([]domain.CalendarEntry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, entry_date, exercise_id, steps, notes, created_at, updated_at
		FROM calendar_entries WHERE user_id = ?
		ORDER BY entry_date DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list calendar entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.CalendarEntry
	for rows.Next() {
		var (
			e          domain.CalendarEntry
			exerciseID sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.EntryDate, &exerciseID, &e.Steps, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan calendar entry: %w", err)
		}
		e.ExerciseID = exerciseID.String
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *calendarRepo) CreateEntry(ctx context.Context, e domain.CalendarEntry) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO calendar_entries (id, user_id, entry_date, exercise_id, steps, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.EntryDate, nullable(e.ExerciseID), e.Steps, e.Notes, now, now)
	return mapWriteErr(err)
}

func (r *calendarRepo) UpdateEntry(ctx context.Context, e domain.CalendarEntry) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE calendar_entries SET entry_date = ?, exercise_id = ?, steps = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		e.EntryDate, nullable(e.ExerciseID), e.Steps, e.Notes, time.Now().UTC(), e.ID)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireRowAffected(res)
}

func (r *calendarRepo) DeleteEntry(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM calendar_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *calendarRepo) DeleteEntriesByUser(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM calendar_entries WHERE user_id = ?`, userID)
	return err
}

func scanEntry(row *sql.Row) (domain.CalendarEntry, error) {
	var (
		e          domain.CalendarEntry
		exerciseID sql.NullString
	)
	err := row.Scan(&e.ID, &e.UserID, &e.EntryDate, &exerciseID, &e.Steps, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CalendarEntry{}, store.ErrNotFound
	}
	if err != nil {
		return domain.CalendarEntry{}, fmt.Errorf("scan calendar entry: %w", err)
	}
	e.ExerciseID = exerciseID.String
	return e, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
