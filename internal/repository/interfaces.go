package repository

import (
	"context"
	"time"

	"microblog/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, username, aboutMe string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	TouchLastSeen(ctx context.Context, id int64, seenAt time.Time) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	// ListFeed returns posts authored by userID or by anyone userID follows,
	// newest first.
	ListFeed(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, error)
}

type FollowRepository interface {
	// Create is idempotent: inserting an existing pair is a no-op.
	Create(ctx context.Context, followerID, followedID int64) error
	Delete(ctx context.Context, followerID, followedID int64) error
	Exists(ctx context.Context, followerID, followedID int64) (bool, error)
	// Counts returns how many users follow userID and how many userID follows.
	Counts(ctx context.Context, userID int64) (followers, followed int, err error)
}
