package service

import (
	"context"
	"fmt"
	"time"

	"microblog/internal/domain"
	"microblog/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// GetProfile returns the user with follower/followed counts filled in.
func (s *UserService) GetProfile(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	followers, followed, err := s.followRepo.Counts(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("counting follows: %w", err)
	}
	user.FollowerCount = followers
	user.FollowedCount = followed
	return user, nil
}

// UpdateProfile changes the user's username and about-me text. A username
// change must not collide with another account.
func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User, username, aboutMe string) error {
	if username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrUsernameTaken
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, user.ID, username, aboutMe); err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	user.Username = username
	user.AboutMe = aboutMe
	return nil
}

// TouchLastSeen records request activity for an authenticated user.
func (s *UserService) TouchLastSeen(ctx context.Context, userID int64) error {
	return s.userRepo.TouchLastSeen(ctx, userID, time.Now().UTC())
}
