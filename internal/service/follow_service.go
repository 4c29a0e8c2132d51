package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"warbler/internal/domain"
	"warbler/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrSelfFollow   = errors.New("cannot follow yourself")
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

// Follow creates the edge follower -> target. Following someone twice is a
// no-op; following yourself is rejected.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return ErrSelfFollow
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if target == nil {
		return ErrUserNotFound
	}

	return s.followRepo.Create(ctx, targetID, followerID)
}

// Unfollow removes the edge if present, no-op otherwise.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	return s.followRepo.Delete(ctx, targetID, followerID)
}

// IsFollowing reports whether a follows b.
func (s *FollowService) IsFollowing(ctx context.Context, a, b uuid.UUID) (bool, error) {
	return s.followRepo.Exists(ctx, b, a)
}

// IsFollowedBy reports whether b follows a.
func (s *FollowService) IsFollowedBy(ctx context.Context, a, b uuid.UUID) (bool, error) {
	return s.followRepo.Exists(ctx, a, b)
}

func (s *FollowService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	users, err := s.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *FollowService) ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	users, err := s.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
