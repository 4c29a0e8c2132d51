package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessageLength bounds the text of a single warble.
const MaxMessageLength = 140

type Message struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	// Joined fields
	AuthorUsername string `json:"author_username,omitempty"`
	AuthorImageURL string `json:"author_image_url,omitempty"`
}
