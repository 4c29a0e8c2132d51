package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessage(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")

	msg, err := f.messages.Create(context.Background(), alice.ID, "  hello birds  ")
	require.NoError(t, err)

	assert.Equal(t, "hello birds", msg.Text)
	assert.Equal(t, alice.ID, msg.UserID)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestCreateMessageRejectsEmpty(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")

	_, err := f.messages.Create(context.Background(), alice.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestCreateMessageRejectsTooLong(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")

	_, err := f.messages.Create(context.Background(), alice.ID, strings.Repeat("a", 141))
	assert.ErrorIs(t, err, ErrMessageTooLong)

	_, err = f.messages.Create(context.Background(), alice.ID, strings.Repeat("a", 140))
	assert.NoError(t, err)
}

func TestGetMessageFillsAuthor(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")
	created := f.addMessage(t, alice.ID, "hello")

	msg, err := f.messages.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", msg.AuthorUsername)
	assert.Equal(t, alice.ImageURL, msg.AuthorImageURL)
}

func TestGetMissingMessage(t *testing.T) {
	f := newFixture()

	_, err := f.messages.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestDeleteMessageOwnerOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	msg := f.addMessage(t, alice.ID, "mine")

	err := f.messages.Delete(ctx, bob.ID, msg.ID)
	assert.ErrorIs(t, err, ErrNotMessageOwner)

	// Still there after the rejected attempt.
	got, err := f.messages.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, msg.ID, got.ID)

	require.NoError(t, f.messages.Delete(ctx, alice.ID, msg.ID))

	_, err = f.messages.Get(ctx, msg.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestDeleteMessageCascadesLikes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	msg := f.addMessage(t, alice.ID, "soon gone")

	liked, err := f.messages.ToggleLike(ctx, bob.ID, msg.ID)
	require.NoError(t, err)
	require.True(t, liked)

	require.NoError(t, f.messages.Delete(ctx, alice.ID, msg.ID))

	liked, err = f.messages.HasLiked(ctx, bob.ID, msg.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	stats, err := f.users.Stats(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Likes)
}

func TestToggleLike(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	msg := f.addMessage(t, alice.ID, "like me")

	liked, err := f.messages.ToggleLike(ctx, bob.ID, msg.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	msgs, err := f.messages.ListLiked(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, msg.ID, msgs[0].ID)

	n, err := f.messages.CountLikes(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Toggling again removes the edge; the double toggle nets to zero.
	liked, err = f.messages.ToggleLike(ctx, bob.ID, msg.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	msgs, err = f.messages.ListLiked(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	n, err = f.messages.CountLikes(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestToggleLikeOwnMessage(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")
	msg := f.addMessage(t, alice.ID, "self five")

	liked, err := f.messages.ToggleLike(context.Background(), alice.ID, msg.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestToggleLikeMissingMessage(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")

	_, err := f.messages.ToggleLike(context.Background(), alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
