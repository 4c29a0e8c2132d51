package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"warbler/internal/domain"
	"warbler/internal/repository"
)

type LikeRepo struct {
	s *Store
}

var _ repository.LikeRepository = (*LikeRepo)(nil)

func NewLikeRepo(s *Store) *LikeRepo {
	return &LikeRepo{s: s}
}

func (r *LikeRepo) Create(ctx context.Context, userID, messageID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.likes {
		if l.userID == userID && l.messageID == messageID {
			return nil
		}
	}
	r.s.likes = append(r.s.likes, likeEdge{
		userID:    userID,
		messageID: messageID,
		createdAt: time.Now(),
	})
	return nil
}

func (r *LikeRepo) Delete(ctx context.Context, userID, messageID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.likes = deleteWhere(r.s.likes, func(l likeEdge) bool {
		return l.userID == userID && l.messageID == messageID
	})
	return nil
}

func (r *LikeRepo) Exists(ctx context.Context, userID, messageID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.likes {
		if l.userID == userID && l.messageID == messageID {
			return true, nil
		}
	}
	return false, nil
}

func (r *LikeRepo) ListLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var msgs []domain.Message
	for i := len(r.s.likes) - 1; i >= 0; i-- {
		l := r.s.likes[i]
		if l.userID != userID {
			continue
		}
		for _, m := range r.s.messages {
			if m.ID == l.messageID {
				msgs = append(msgs, r.s.withAuthor(m))
			}
		}
	}
	return msgs, nil
}

func (r *LikeRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, l := range r.s.likes {
		if l.userID == userID {
			n++
		}
	}
	return n, nil
}

func (r *LikeRepo) CountByMessage(ctx context.Context, messageID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, l := range r.s.likes {
		if l.messageID == messageID {
			n++
		}
	}
	return n, nil
}
