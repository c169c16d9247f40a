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

type exercisesRepo struct {
	q execer
}

var _ store.Exercises = (*exercisesRepo)(nil)

func (r *exercisesRepo) GetExerciseByID(ctx context.Context, id string) (domain.Exercise, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, type, difficulty, description, created_at, updated_at
		FROM exercises WHERE id = ?`, id)
	return scanExercise(row)
}

func (r *exercisesRepo) GetExerciseByName(ctx context.Context, name string) (domain.Exercise, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, type, difficulty, description, created_at, updated_at
		FROM exercises WHERE name = ?`, name)
	return scanExercise(row)
}

func (r *exercisesRepo) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, type, difficulty, description, created_at, updated_at
		FROM exercises ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.Difficulty, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}

	return exercises, rows.Err()
}

func (r *exercisesRepo) CreateExercise(ctx context.Context, e domain.Exercise) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO exercises (id, name, type, difficulty, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Type, e.Difficulty, e.Description, now, now)
	return mapWriteErr(err)
}

func (r *exercisesRepo) UpdateExercise(ctx context.Context, e domain.Exercise) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE exercises SET name = ?, type = ?, difficulty = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, e.Type, e.Difficulty, e.Description, time.Now().UTC(), e.ID)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireRowAffected(res)
}

func (r *exercisesRepo) DeleteExercise(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanExercise(row *sql.Row) (domain.Exercise, error) {
	var e domain.Exercise
	err := row.Scan(&e.ID, &e.Name, &e.Type, &e.Difficulty, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Exercise{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("scan exercise: %w", err)
	}
	return e, nil
}
