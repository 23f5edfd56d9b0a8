package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blogforge/blog-api/internal/core/domain"
)

// PostRepository is the Postgres-backed implementation of ports.PostRepository.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO posts (title, text, extra_attribute) VALUES ($1, $2, $3) RETURNING id`,
		post.Title, post.Text, post.ExtraAttribute,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, text, extra_attribute FROM posts WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Text, &p.ExtraAttribute)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &p, nil
}

// Update replaces all mutable fields in a single statement.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE posts SET title = $1, text = $2, extra_attribute = $3 WHERE id = $4`,
		post.Title, post.Text, post.ExtraAttribute, post.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// List returns posts ordered by id ascending. Stable ordering keeps page
// windows deterministic between requests.
func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, text, extra_attribute FROM posts ORDER BY id ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Text, &p.ExtraAttribute); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return total, nil
}
