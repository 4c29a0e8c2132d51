package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"warbler/internal/domain"
	"warbler/internal/repository"
)

type FollowRepo struct {
	s *Store
}

var _ repository.FollowRepository = (*FollowRepo)(nil)

func NewFollowRepo(s *Store) *FollowRepo {
	return &FollowRepo{s: s}
}

func (r *FollowRepo) Create(ctx context.Context, followedID, followerID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.follows {
		if f.followedID == followedID && f.followerID == followerID {
			return nil
		}
	}
	r.s.follows = append(r.s.follows, followEdge{
		followedID: followedID,
		followerID: followerID,
		createdAt:  time.Now(),
	})
	return nil
}

func (r *FollowRepo) Delete(ctx context.Context, followedID, followerID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.follows = deleteWhere(r.s.follows, func(f followEdge) bool {
		return f.followedID == followedID && f.followerID == followerID
	})
	return nil
}

func (r *FollowRepo) Exists(ctx context.Context, followedID, followerID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.follows {
		if f.followedID == followedID && f.followerID == followerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FollowRepo) ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	return r.listUsers(func(f *followEdge) (bool, uuid.UUID) {
		return f.followerID == userID, f.followedID
	}), nil
}

func (r *FollowRepo) ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	return r.listUsers(func(f *followEdge) (bool, uuid.UUID) {
		return f.followedID == userID, f.followerID
	}), nil
}

func (r *FollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	users, _ := r.ListFollowing(ctx, userID)
	return len(users), nil
}

func (r *FollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int, error) {
	users, _ := r.ListFollowers(ctx, userID)
	return len(users), nil
}

func (r *FollowRepo) listUsers(pick func(*followEdge) (bool, uuid.UUID)) []domain.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []domain.User
	for i := len(r.s.follows) - 1; i >= 0; i-- {
		if ok, id := pick(&r.s.follows[i]); ok {
			if u := r.s.findUser(func(u *domain.User) bool { return u.ID == id }); u != nil {
				users = append(users, *u)
			}
		}
	}
	return users
}
