package domain

import "errors"

// Auth error taxonomy. Each sentinel maps to a deterministic HTTP status in
// the API layer (see internal/api/error_handler.go).
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrWrongCredentials   = errors.New("wrong credentials")
	ErrTokenCreation      = errors.New("token creation failed")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	// ErrUserNotFound is a repository-level outcome. The Authenticator folds
	// it into ErrWrongCredentials so an unknown client_id is indistinguishable
	// from a bad secret.
	ErrUserNotFound = errors.New("user not found")
)

// User is a credential record. Users are provisioned by migration or seeding
// and are immutable at runtime; there is no update or delete path.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
