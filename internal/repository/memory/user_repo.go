package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"warbler/internal/domain"
	"warbler/internal/repository"
)

type UserRepo struct {
	s *Store
}

var _ repository.UserRepository = (*UserRepo)(nil)

func NewUserRepo(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.findUser(func(u *domain.User) bool { return u.ID == id }), nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.findUser(func(u *domain.User) bool { return u.Username == username }), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.findUser(func(u *domain.User) bool { return u.Email == email }), nil
}

func (r *UserRepo) Search(ctx context.Context, q string) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []domain.User
	for _, u := range r.s.users {
		if strings.Contains(strings.ToLower(u.Username), strings.ToLower(q)) {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == user.ID {
			r.s.users[i] = *user
		}
	}
	return nil
}

// Delete removes the user together with their messages, follow edges and
// like edges, like the ON DELETE CASCADE constraints do.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var owned []uuid.UUID
	for _, m := range r.s.messages {
		if m.UserID == id {
			owned = append(owned, m.ID)
		}
	}

	r.s.users = deleteWhere(r.s.users, func(u domain.User) bool { return u.ID == id })
	r.s.messages = deleteWhere(r.s.messages, func(m domain.Message) bool { return m.UserID == id })
	r.s.follows = deleteWhere(r.s.follows, func(f followEdge) bool {
		return f.followedID == id || f.followerID == id
	})
	r.s.likes = deleteWhere(r.s.likes, func(l likeEdge) bool {
		if l.userID == id {
			return true
		}
		for _, mid := range owned {
			if l.messageID == mid {
				return true
			}
		}
		return false
	})
	return nil
}
