package service

import (
	"context"
	"errors"
	"fmt"

	"microblog/internal/domain"
	"microblog/internal/repository"
)

var (
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrUserNotFound = errors.New("user not found")
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow makes actor follow the user named targetUsername. Following a user
// twice is a no-op; following yourself is rejected.
func (s *FollowService) Follow(ctx context.Context, actorID int64, targetUsername string) (*domain.User, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	if actorID == target.ID {
		return nil, ErrSelfFollow
	}

	if err := s.followRepo.Create(ctx, actorID, target.ID); err != nil {
		return nil, fmt.Errorf("creating follow: %w", err)
	}
	return target, nil
}

// Unfollow removes the edge from actor to targetUsername. Not following is a
// no-op.
func (s *FollowService) Unfollow(ctx context.Context, actorID int64, targetUsername string) (*domain.User, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	if actorID == target.ID {
		return nil, ErrSelfFollow
	}

	if err := s.followRepo.Delete(ctx, actorID, target.ID); err != nil {
		return nil, fmt.Errorf("deleting follow: %w", err)
	}
	return target, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error) {
	return s.followRepo.Exists(ctx, actorID, targetID)
}
