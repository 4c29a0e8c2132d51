package repository

import (
	"context"

	"github.com/google/uuid"
	"warbler/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Search(ctx context.Context, q string) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Message, error)
	ListTimeline(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Message, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Message, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FollowRepository interface {
	Create(ctx context.Context, followedID, followerID uuid.UUID) error
	Delete(ctx context.Context, followedID, followerID uuid.UUID) error
	Exists(ctx context.Context, followedID, followerID uuid.UUID) (bool, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.User, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.User, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int, error)
}

type LikeRepository interface {
	Create(ctx context.Context, userID, messageID uuid.UUID) error
	Delete(ctx context.Context, userID, messageID uuid.UUID) error
	Exists(ctx context.Context, userID, messageID uuid.UUID) (bool, error)
	ListLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	CountByMessage(ctx context.Context, messageID uuid.UUID) (int, error)
}
