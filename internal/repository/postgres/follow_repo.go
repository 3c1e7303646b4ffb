package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FollowRepo struct {
	pool *pgxpool.Pool
}

func NewFollowRepo(pool *pgxpool.Pool) *FollowRepo {
	return &FollowRepo{pool: pool}
}

func (r *FollowRepo) Create(ctx context.Context, followerID, followedID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (follower_id, followed_id) DO NOTHING`,
		followerID, followedID, time.Now().UTC(),
	)
	return err
}

func (r *FollowRepo) Delete(ctx context.Context, followerID, followedID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`,
		followerID, followedID,
	)
	return err
}

func (r *FollowRepo) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`,
		followerID, followedID,
	).Scan(&exists)
	return exists, err
}

func (r *FollowRepo) Counts(ctx context.Context, userID int64) (int, int, error) {
	var followers, followed int
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM follows WHERE followed_id = $1),
			(SELECT count(*) FROM follows WHERE follower_id = $1)`,
		userID,
	).Scan(&followers, &followed)
	return followers, followed, err
}
