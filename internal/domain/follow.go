package domain

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge in the social graph: FollowerID follows FollowedID.
type Follow struct {
	FollowedID uuid.UUID `json:"followed_id"`
	FollowerID uuid.UUID `json:"follower_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Like links a user to a message they liked. At most one edge per pair;
// liking again removes the edge rather than counting up.
type Like struct {
	UserID    uuid.UUID `json:"user_id"`
	MessageID uuid.UUID `json:"message_id"`
	CreatedAt time.Time `json:"created_at"`
}
