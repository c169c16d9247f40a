// Package api holds the wire-level request/response types and error shapes
// shared between the HTTP handlers and any API consumers.
package api

// TokenResponse is returned by the login and refresh endpoints.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"` // always "Bearer"
	ExpiresIn    int    `json:"expires_in"` // seconds until access token expiry
}

// UserResponse is the public view of a user profile. It never includes
// credential material.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ExerciseResponse is the public view of an exercise.
type ExerciseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description,omitempty"`
}

// CalendarEntryResponse is the public view of a calendar entry.
type CalendarEntryResponse struct {
	ID         string `json:"id"`
	EntryDate  string `json:"entry_date"` // YYYY-MM-DD
	ExerciseID string `json:"exercise_id,omitempty"`
	Steps      int64  `json:"steps"`
	Notes      string `json:"notes,omitempty"`
}

// ErrorResponse is the error body shape for every failure.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the liveness/readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// RegisterRequest creates a new account with the default "user" role.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// CreateUserRequest is the admin-only variant of registration; it may set
// the role explicitly.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"required,oneof=user admin"`
}

// UpdateUserRequest patches a profile. Nil fields are left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=64"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role,omitempty"     validate:"omitempty,oneof=user admin"`
}

// ExerciseRequest creates or replaces an exercise.
type ExerciseRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=128"`
	Type        string `json:"type"        validate:"required,oneof=strength cardio flexibility balance"`
	Difficulty  string `json:"difficulty"  validate:"required,oneof=easy medium hard"`
	Description string `json:"description" validate:"max=2048"`
}

// CalendarEntryRequest creates or replaces a calendar entry.
type CalendarEntryRequest struct {
	EntryDate  string `json:"entry_date"  validate:"required,datetime=2006-01-02"`
	ExerciseID string `json:"exercise_id" validate:"omitempty"`
	Steps      int64  `json:"steps"       validate:"gte=0"`
	Notes      string `json:"notes"       validate:"max=2048"`
}
