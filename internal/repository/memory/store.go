// Package memory holds slice-backed implementations of the repository
// interfaces, all sharing one Store. It backs the test suites and is handy
// for running the app without a database; cascade rules mirror the foreign
// keys in schema.sql.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"warbler/internal/domain"
)

type followEdge struct {
	followedID uuid.UUID
	followerID uuid.UUID
	createdAt  time.Time
}

type likeEdge struct {
	userID    uuid.UUID
	messageID uuid.UUID
	createdAt time.Time
}

type Store struct {
	mu       sync.RWMutex
	users    []domain.User
	messages []domain.Message
	follows  []followEdge
	likes    []likeEdge
}

func NewStore() *Store {
	return &Store{}
}

// Ping satisfies the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) findUser(match func(*domain.User) bool) *domain.User {
	for i := range s.users {
		if match(&s.users[i]) {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// withAuthor fills the joined author fields the SQL queries produce.
func (s *Store) withAuthor(m domain.Message) domain.Message {
	if u := s.findUser(func(u *domain.User) bool { return u.ID == m.UserID }); u != nil {
		m.AuthorUsername = u.Username
		m.AuthorImageURL = u.ImageURL
	}
	return m
}

func deleteWhere[T any](items []T, match func(T) bool) []T {
	kept := items[:0:0]
	for _, it := range items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	return kept
}
