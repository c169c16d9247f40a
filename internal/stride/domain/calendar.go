package domain

import "time"

// CalendarEntry is a per-user daily record: a step count plus an optional
// reference to an exercise performed that day. Entries belong to exactly
// one user and are only visible to their owner.
type CalendarEntry struct {
	ID         string
	UserID     string
	EntryDate  string // YYYY-MM-DD
	ExerciseID string // optional, empty when the entry is steps-only
	Steps      int64
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
