package service

import (
	"errors"

	"github.com/strideapp/stride/internal/stride/domain"
)

var ErrForbidden = errors.New("forbidden")

// RequireRole enforces an exact role match. There is no role hierarchy:
// an admin asking for "user" is denied just like the reverse.
func RequireRole(actual domain.Role, required domain.Role) error {
	if actual != required {
		return ErrForbidden
	}
	return nil
}
