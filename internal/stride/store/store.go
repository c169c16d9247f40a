package store

import (
	"context"
	"errors"

	"github.com/strideapp/stride/internal/stride/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories are exposed as methods to keep concerns
// tidy and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Exercises() Exercises
	CalendarEntries() CalendarEntries

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn inside a transaction, committing on nil and
	// rolling back on error. Preferred over Tx for most callers.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and uniqueness checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns all users ordered by creation (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser rewrites username, email, and role, bumping updated_at.
	// Returns ErrAlreadyExists when the new email collides.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// DeleteUser removes the user row only; callers cascade dependents.
	DeleteUser(ctx context.Context, userID string) error
}

type Exercises interface {
	// GetExerciseByID returns an exercise by id.
	GetExerciseByID(ctx context.Context, id string) (domain.Exercise, error)

	// GetExerciseByName backs the duplicate-name conflict check.
	GetExerciseByName(ctx context.Context, name string) (domain.Exercise, error)

	// ListExercises returns the catalog ordered by name.
	ListExercises(ctx context.Context) ([]domain.Exercise, error)

	// CreateExercise inserts a catalog entry. Returns ErrAlreadyExists
	// when the name is taken.
	CreateExercise(ctx context.Context, e domain.Exercise) error

	// UpdateExercise rewrites the mutable fields, bumping updated_at.
	UpdateExercise(ctx context.Context, e domain.Exercise) error

	// DeleteExercise removes a catalog entry.
	DeleteExercise(ctx context.Context, id string) error
}

type CalendarEntries interface {
	// GetEntryByID returns an entry by id regardless of owner; ownership
	// checks belong to the service layer.
	GetEntryByID(ctx context.Context, id string) (domain.CalendarEntry, error)

	// ListEntriesByUser returns a user's entries ordered by entry date
	// (newest first).
	ListEntriesByUser(ctx context.Context, userID string) ([]domain.CalendarEntry, error)

	// CreateEntry inserts a new entry.
	CreateEntry(ctx context.Context, e domain.CalendarEntry) error

	// UpdateEntry rewrites the mutable fields, bumping updated_at.
	UpdateEntry(ctx context.Context, e domain.CalendarEntry) error

	// DeleteEntry removes a single entry.
	DeleteEntry(ctx context.Context, id string) error

	// DeleteEntriesByUser removes every entry a user owns. Used inside
	// the user-deletion transaction.
	DeleteEntriesByUser(ctx context.Context, userID string) error
}
