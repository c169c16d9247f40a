package domain

import "time"

// Role is the user's authorization level. Matching is exact: "admin" is
// not implicitly "user".
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a stored account record. PasswordHash is the bcrypt encoding of
// the password; the plaintext is never stored or logged.
type User struct {
	ID           string
	Username     string
	Email        string // unique
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
