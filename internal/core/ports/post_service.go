package ports

import (
	"context"

	"github.com/blogforge/blog-api/internal/core/domain"
)

const (
	DefaultPage         = 1
	DefaultPostsPerPage = 5
)

// ListPostsInput carries the pagination parameters for the list endpoint.
// Values below 1 fall back to the defaults.
type ListPostsInput struct {
	Page         int
	PostsPerPage int
}

// PostPage is one window over the ordered post collection.
type PostPage struct {
	Posts        []domain.Post
	Page         int
	PostsPerPage int
	// NumPages is ceil(total / PostsPerPage); 0 when the store is empty.
	NumPages int
}

// CreatePostInput carries all data needed to create a post.
// A nil ExtraAttribute takes the column default.
type CreatePostInput struct {
	Title          string
	Text           string
	ExtraAttribute *int
}

// UpdatePostInput replaces every mutable field of an existing post.
type UpdatePostInput struct {
	Title          string
	Text           string
	ExtraAttribute int
}

// PostService defines use-case operations for posts.
type PostService interface {
	ListPosts(ctx context.Context, input ListPostsInput) (*PostPage, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, id int64, input UpdatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
}
