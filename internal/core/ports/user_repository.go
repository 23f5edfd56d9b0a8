package ports

import (
	"context"

	"github.com/blogforge/blog-api/internal/core/domain"
)

// UserRepository defines the persistence interface for credential records.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user and fills in its generated ID. Used only by
	// provisioning/seeding; there is no runtime write path for users.
	Create(ctx context.Context, user *domain.User) error
}
