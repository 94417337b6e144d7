package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jamiifund/admin/internal/models"
)

var ErrPostNotFound = errors.New("blog post not found")

type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

const postColumns = `
	id, title, content, author, published, created_at, updated_at
`

func (r *BlogRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM blog_posts
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *BlogRepository) Create(ctx context.Context, post models.BlogPost) error {
	const query = `
		INSERT INTO blog_posts (
			id, title, content, author, published, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.Author,
		post.Published,
	)
	return err
}

func (r *BlogRepository) Update(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	const query = `
		UPDATE blog_posts
		SET title = $2, content = $3, published = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + postColumns + `
	`

	updated, err := scanPost(r.pool.QueryRow(ctx, query, post.ID, post.Title, post.Content, post.Published))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.BlogPost{}, ErrPostNotFound
		}
		return models.BlogPost{}, err
	}
	return updated, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM blog_posts WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrPostNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (models.BlogPost, error) {
	var p models.BlogPost
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Author,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
