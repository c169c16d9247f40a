package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/service"
	"github.com/strideapp/stride/internal/stride/store"
	"github.com/strideapp/stride/pkg/api"
	"github.com/strideapp/stride/pkg/slogx"
)

var validate = validator.New()

// decodeJSON parses and validates a JSON request body. On false the error
// response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.ErrInvalidRequest.WriteError(w)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		api.ErrInvalidRequest.WriteError(w)
		return false
	}
	return true
}

// writeServiceError maps service and store sentinels onto the wire error
// taxonomy. Anything unmapped becomes a 500 and gets logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		api.ErrInvalidGrant.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		api.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrEmailInUse):
		api.ErrEmailInUse.WriteError(w)
	case errors.Is(err, service.ErrExerciseExists):
		api.ErrExerciseExists.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		api.ErrAccessDenied.WriteError(w)
	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidExercise),
		errors.Is(err, service.ErrUnknownExercise):
		api.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		api.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		api.ErrServerError.WriteError(w)
	}
}

func toUserResponse(u domain.User) api.UserResponse {
	return api.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}

func toExerciseResponse(e domain.Exercise) api.ExerciseResponse {
	return api.ExerciseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Type:        string(e.Type),
		Difficulty:  string(e.Difficulty),
		Description: e.Description,
	}
}

func toCalendarEntryResponse(e domain.CalendarEntry) api.CalendarEntryResponse {
	return api.CalendarEntryResponse{
		ID:         e.ID,
		EntryDate:  e.EntryDate,
		ExerciseID: e.ExerciseID,
		Steps:      e.Steps,
		Notes:      e.Notes,
	}
}

func toTokenResponse(p domain.TokenPair) api.TokenResponse {
	return api.TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    p.TokenType,
		ExpiresIn:    int(p.ExpiresIn.Seconds()),
	}
}
