package ports

import (
	"context"

	"github.com/blogforge/blog-api/internal/core/domain"
)

// PostRepository defines the persistence interface for posts.
type PostRepository interface {
	// Create inserts the post and fills in its generated ID.
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// Update replaces all mutable fields in one statement.
	// Returns domain.ErrPostNotFound when the id does not exist.
	Update(ctx context.Context, post *domain.Post) error
	// Delete returns domain.ErrPostNotFound when the id does not exist.
	Delete(ctx context.Context, id int64) error
	// List returns up to limit posts ordered by id ascending, skipping offset.
	List(ctx context.Context, limit, offset int) ([]domain.Post, error)
	Count(ctx context.Context) (int64, error)
}
