package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"warbler/internal/domain"
	"warbler/internal/repository"
)

// ErrWrongPassword is returned when a profile edit fails password
// confirmation.
var ErrWrongPassword = errors.New("wrong password")

const timelineLimit = 100

type UserService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	followRepo  repository.FollowRepository
	likeRepo    repository.LikeRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		followRepo:  followRepo,
		likeRepo:    likeRepo,
	}
}

// Search lists users whose username contains q; empty q lists everyone.
func (s *UserService) Search(ctx context.Context, q string) ([]domain.User, error) {
	users, err := s.userRepo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Stats gathers the four counts shown on a profile page.
func (s *UserService) Stats(ctx context.Context, userID uuid.UUID) (*domain.ProfileStats, error) {
	messages, err := s.messageRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileStats{
		Messages:  messages,
		Following: following,
		Followers: followers,
		Likes:     likes,
	}, nil
}

func (s *UserService) Messages(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	msgs, err := s.messageRepo.ListByUser(ctx, userID, timelineLimit)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// Timeline is the logged-in home feed: the user's own messages plus those of
// everyone they follow.
func (s *UserService) Timeline(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	msgs, err := s.messageRepo.ListTimeline(ctx, userID, timelineLimit)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// Recent is the anonymous feed: the newest messages site-wide.
func (s *UserService) Recent(ctx context.Context, limit int) ([]domain.Message, error) {
	msgs, err := s.messageRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

type ProfileUpdateInput struct {
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            string
	Location       string
}

// UpdateProfile applies the edit after re-verifying the account password.
// Username and email uniqueness is enforced when they change.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, password string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !verifyPassword(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	if input.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
		user.Username = input.Username
	}
	if input.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		user.Email = input.Email
	}

	if input.ImageURL != "" {
		user.ImageURL = input.ImageURL
	}
	if input.HeaderImageURL != "" {
		user.HeaderImageURL = input.HeaderImageURL
	}
	user.Bio = input.Bio
	user.Location = input.Location

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}

// Delete removes the account; owned messages, follow edges and like edges
// cascade away with it.
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.Delete(ctx, userID)
}
