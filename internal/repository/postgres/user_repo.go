package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"microblog/internal/domain"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, about_me, last_seen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return r.pool.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash,
		user.AboutMe, user.LastSeen, user.CreatedAt,
	).Scan(&user.ID)
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, username, email, password_hash, about_me, last_seen, created_at FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, username, email, password_hash, about_me, last_seen, created_at FROM users WHERE username = $1", username)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, username, email, password_hash, about_me, last_seen, created_at FROM users WHERE email = $1", email)
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id int64, username, aboutMe string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET username = $1, about_me = $2 WHERE id = $3`,
		username, aboutMe, id,
	)
	return err
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`,
		passwordHash, id,
	)
	return err
}

func (r *UserRepo) TouchLastSeen(ctx context.Context, id int64, seenAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_seen = $1 WHERE id = $2`,
		seenAt, id,
	)
	return err
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.AboutMe, &u.LastSeen, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
