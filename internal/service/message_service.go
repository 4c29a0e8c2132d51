package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"warbler/internal/domain"
	"warbler/internal/repository"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrNotMessageOwner = errors.New("only the message owner can perform this action")
	ErrEmptyMessage    = errors.New("message text is empty")
	ErrMessageTooLong  = errors.New("message text is too long")
)

type MessageService struct {
	messageRepo repository.MessageRepository
	likeRepo    repository.LikeRepository
}

func NewMessageService(messageRepo repository.MessageRepository, likeRepo repository.LikeRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		likeRepo:    likeRepo,
	}
}

// Create stores a new message with a server-assigned id and timestamp.
func (s *MessageService) Create(ctx context.Context, authorID uuid.UUID, text string) (*domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	msg := &domain.Message{
		ID:        uuid.New(),
		UserID:    authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}
	return msg, nil
}

// Get is an unauthenticated read.
func (s *MessageService) Get(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	return msg, nil
}

// Delete removes the message and, through the cascade, its like edges.
// Only the owner may delete.
func (s *MessageService) Delete(ctx context.Context, requesterID, messageID uuid.UUID) error {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrMessageNotFound
	}
	if msg.UserID != requesterID {
		return ErrNotMessageOwner
	}

	return s.messageRepo.Delete(ctx, messageID)
}

// ToggleLike flips the like edge for (userID, messageID): absent edges are
// created, present ones removed. Reports whether the message is liked after
// the call. Liking your own message is allowed.
func (s *MessageService) ToggleLike(ctx context.Context, userID, messageID uuid.UUID) (bool, error) {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return false, err
	}
	if msg == nil {
		return false, ErrMessageNotFound
	}

	liked, err := s.likeRepo.Exists(ctx, userID, messageID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.likeRepo.Delete(ctx, userID, messageID)
	}
	return true, s.likeRepo.Create(ctx, userID, messageID)
}

// ListLiked returns the messages a user has liked, most recent like first.
func (s *MessageService) ListLiked(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	msgs, err := s.likeRepo.ListLikedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// CountLikes returns how many users like the message.
func (s *MessageService) CountLikes(ctx context.Context, messageID uuid.UUID) (int, error) {
	return s.likeRepo.CountByMessage(ctx, messageID)
}

// HasLiked reports whether the user currently likes the message.
func (s *MessageService) HasLiked(ctx context.Context, userID, messageID uuid.UUID) (bool, error) {
	return s.likeRepo.Exists(ctx, userID, messageID)
}
