package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Machine-readable error codes used on the wire.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidGrant      = "invalid_grant"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeAccessDenied      = "access_denied"
	ErrorCodeEmailInUse        = "email_in_use"
	ErrorCodeExerciseExists    = "exercise_exists"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeServerError       = "server_error"
)

// Error is the wire-level error carrying an HTTP status, a machine code,
// and a human-readable description. It implements the error interface so
// handlers and clients can share it.
type Error struct {
	// StatusCode is the HTTP status for this error; not serialized.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code, e.g. "invalid_grant".
	Code string `json:"error"`

	// Description is a human-readable explanation.
	Description string `json:"error_description"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this error as a JSON HTTP response.
func (e *Error) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

var (
	// ErrInvalidRequest covers malformed bodies and failed payload validation.
	ErrInvalidRequest = &Error{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidGrant is the single login-failure error. Unknown email and
	// wrong password share this exact shape to avoid account enumeration.
	ErrInvalidGrant = &Error{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidGrant,
		Description: "invalid credentials",
	}

	// ErrInvalidToken is returned when a bearer token is missing, invalid,
	// expired, or its subject no longer exists.
	ErrInvalidToken = &Error{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid or expired",
	}

	// ErrInsufficientScope is returned when the token lacks a required scope.
	ErrInsufficientScope = &Error{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeInsufficientScope,
		Description: "the access token does not have the required scopes",
	}

	// ErrAccessDenied is returned when a valid identity lacks the required role.
	ErrAccessDenied = &Error{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccessDenied,
		Description: "access denied",
	}

	// ErrEmailInUse is returned on registration/creation conflicts.
	ErrEmailInUse = &Error{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeEmailInUse,
		Description: "email already in use",
	}

	// ErrExerciseExists is returned when an exercise name is already taken.
	ErrExerciseExists = &Error{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeExerciseExists,
		Description: "exercise already exists",
	}

	// ErrNotFound is returned for operations on a missing id.
	ErrNotFound = &Error{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrServerError is the catch-all for unexpected failures.
	ErrServerError = &Error{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
