package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"microblog/internal/domain"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (body, user_id, language, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.pool.QueryRow(ctx, query,
		post.Body, post.UserID, post.Language, post.CreatedAt,
	).Scan(&post.ID)
}

// ListFeed returns the union of posts authored by userID and posts authored
// by users that userID follows. Ordered (created_at DESC, id DESC) so posts
// sharing a timestamp come out in a deterministic order.
func (r *PostRepo) ListFeed(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.body, p.user_id, p.language, p.created_at, u.username
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1
			OR p.user_id IN (SELECT followed_id FROM follows WHERE follower_id = $1)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3`

	return r.listPosts(ctx, query, userID, limit, offset)
}

func (r *PostRepo) ListAll(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.body, p.user_id, p.language, p.created_at, u.username
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2`

	return r.listPosts(ctx, query, limit, offset)
}

func (r *PostRepo) ListByAuthor(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.body, p.user_id, p.language, p.created_at, u.username
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3`

	return r.listPosts(ctx, query, userID, limit, offset)
}

func (r *PostRepo) listPosts(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.Body, &p.UserID, &p.Language, &p.CreatedAt,
			&p.AuthorUsername,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
