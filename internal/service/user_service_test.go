package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUsers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.addUser(t, "alice")
	f.addUser(t, "alicia")
	f.addUser(t, "bob")

	users, err := f.users.Search(ctx, "ali")
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = f.users.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, users, 3)

	users, err = f.users.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetUser(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")

	user, err := f.users.Get(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = f.users.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileStats(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	carol := f.addUser(t, "carol")

	f.addMessage(t, alice.ID, "one")
	f.addMessage(t, alice.ID, "two")
	msg := f.addMessage(t, bob.ID, "bob's")

	require.NoError(t, f.follows.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, f.follows.Follow(ctx, carol.ID, alice.ID))

	_, err := f.messages.ToggleLike(ctx, alice.ID, msg.ID)
	require.NoError(t, err)

	stats, err := f.users.Stats(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Messages)
	assert.Equal(t, 1, stats.Following)
	assert.Equal(t, 1, stats.Followers)
	assert.Equal(t, 1, stats.Likes)
}

func TestTimeline(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	carol := f.addUser(t, "carol")

	f.addMessage(t, alice.ID, "from alice")
	f.addMessage(t, bob.ID, "from bob")
	f.addMessage(t, carol.ID, "from carol")

	require.NoError(t, f.follows.Follow(ctx, alice.ID, bob.ID))

	// Alice sees her own and bob's messages, newest first; carol is not
	// followed so her message stays out.
	msgs, err := f.users.Timeline(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "from bob", msgs[0].Text)
	assert.Equal(t, "from alice", msgs[1].Text)
}

func TestRecent(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")
	f.addMessage(t, alice.ID, "first")
	f.addMessage(t, alice.ID, "second")

	msgs, err := f.users.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "second", msgs[0].Text)

	msgs, err = f.users.Recent(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")

	updated, err := f.users.UpdateProfile(ctx, alice.ID, "secret1", ProfileUpdateInput{
		Username: "alice",
		Email:    "alice@example.com",
		Bio:      "warbling away",
		Location: "Birdland",
	})
	require.NoError(t, err)
	assert.Equal(t, "warbling away", updated.Bio)
	assert.Equal(t, "Birdland", updated.Location)
	// Empty image fields keep the existing values.
	assert.Equal(t, alice.ImageURL, updated.ImageURL)
	assert.Equal(t, alice.HeaderImageURL, updated.HeaderImageURL)
}

func TestUpdateProfileWrongPassword(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")

	_, err := f.users.UpdateProfile(context.Background(), alice.ID, "wrongpass", ProfileUpdateInput{
		Username: "alice",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestUpdateProfileUsernameConflict(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")
	f.addUser(t, "bob")

	_, err := f.users.UpdateProfile(context.Background(), alice.ID, "secret1", ProfileUpdateInput{
		Username: "bob",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestDeleteUserCascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	msg := f.addMessage(t, alice.ID, "going away")
	require.NoError(t, f.follows.Follow(ctx, bob.ID, alice.ID))
	_, err := f.messages.ToggleLike(ctx, bob.ID, msg.ID)
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(ctx, alice.ID))

	_, err = f.users.Get(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.messages.Get(ctx, msg.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	following, err := f.follows.ListFollowing(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, following)

	stats, err := f.users.Stats(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Likes)
}
