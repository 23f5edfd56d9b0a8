package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

// PostService implements CRUD and pagination over the post collection.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// ListPosts returns one page of posts ordered by id ascending.
//
// Pages are 1-based; NumPages is ceil(total/posts_per_page), so an empty store
// yields zero pages and a page beyond the last yields an empty slice rather
// than an error. No snapshot isolation: concurrent writes may shift page
// boundaries between calls.
func (s *PostService) ListPosts(ctx context.Context, input ports.ListPostsInput) (*ports.PostPage, error) {
	page := input.Page
	if page < 1 {
		page = ports.DefaultPage
	}
	perPage := input.PostsPerPage
	if perPage < 1 {
		perPage = ports.DefaultPostsPerPage
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	numPages := int((total + int64(perPage) - 1) / int64(perPage))

	posts := []domain.Post{}
	if page <= numPages {
		posts, err = s.repo.List(ctx, perPage, (page-1)*perPage)
		if err != nil {
			return nil, err
		}
	}

	return &ports.PostPage{
		Posts:        posts,
		Page:         page,
		PostsPerPage: perPage,
		NumPages:     numPages,
	}, nil
}

func (s *PostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	extra := domain.DefaultExtraAttribute
	if input.ExtraAttribute != nil {
		extra = *input.ExtraAttribute
	}

	post := &domain.Post{
		Title:          input.Title,
		Text:           input.Text,
		ExtraAttribute: extra,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Int64("post_id", post.ID).Msg("post created")
	return post, nil
}

// UpdatePost replaces every mutable field of the post in a single statement.
// Last writer wins on concurrent updates.
func (s *PostService) UpdatePost(ctx context.Context, id int64, input ports.UpdatePostInput) (*domain.Post, error) {
	post := &domain.Post{
		ID:             id,
		Title:          input.Title,
		Text:           input.Text,
		ExtraAttribute: input.ExtraAttribute,
	}
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("post_id", id).Msg("post updated")
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}
