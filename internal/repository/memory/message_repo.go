package memory

import (
	"context"

	"github.com/google/uuid"
	"warbler/internal/domain"
	"warbler/internal/repository"
)

type MessageRepo struct {
	s *Store
}

var _ repository.MessageRepository = (*MessageRepo)(nil)

func NewMessageRepo(s *Store) *MessageRepo {
	return &MessageRepo{s: s}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.messages = append(r.s.messages, *msg)
	return nil
}

func (r *MessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.messages {
		if m.ID == id {
			m = r.s.withAuthor(m)
			return &m, nil
		}
	}
	return nil, nil
}

func (r *MessageRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Message, error) {
	return r.list(func(m *domain.Message) bool { return m.UserID == userID }, limit), nil
}

func (r *MessageRepo) ListTimeline(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Message, error) {
	r.s.mu.RLock()
	followed := map[uuid.UUID]bool{userID: true}
	for _, f := range r.s.follows {
		if f.followerID == userID {
			followed[f.followedID] = true
		}
	}
	r.s.mu.RUnlock()

	return r.list(func(m *domain.Message) bool { return followed[m.UserID] }, limit), nil
}

func (r *MessageRepo) ListRecent(ctx context.Context, limit int) ([]domain.Message, error) {
	return r.list(func(*domain.Message) bool { return true }, limit), nil
}

func (r *MessageRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, m := range r.s.messages {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *MessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.messages = deleteWhere(r.s.messages, func(m domain.Message) bool { return m.ID == id })
	r.s.likes = deleteWhere(r.s.likes, func(l likeEdge) bool { return l.messageID == id })
	return nil
}

// list walks messages newest first; insertion order is creation order.
func (r *MessageRepo) list(match func(*domain.Message) bool, limit int) []domain.Message {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var msgs []domain.Message
	for i := len(r.s.messages) - 1; i >= 0 && len(msgs) < limit; i-- {
		if match(&r.s.messages[i]) {
			msgs = append(msgs, r.s.withAuthor(r.s.messages[i]))
		}
	}
	return msgs
}
