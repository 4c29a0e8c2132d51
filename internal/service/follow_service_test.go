package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbler/internal/domain"
	"warbler/internal/repository/memory"
)

type fixture struct {
	store    *memory.Store
	auth     *AuthService
	users    *UserService
	follows  *FollowService
	messages *MessageService
}

func newFixture() *fixture {
	store := memory.NewStore()
	userRepo := memory.NewUserRepo(store)
	messageRepo := memory.NewMessageRepo(store)
	followRepo := memory.NewFollowRepo(store)
	likeRepo := memory.NewLikeRepo(store)

	return &fixture{
		store:    store,
		auth:     NewAuthService(userRepo),
		users:    NewUserService(userRepo, messageRepo, followRepo, likeRepo),
		follows:  NewFollowService(followRepo, userRepo),
		messages: NewMessageService(messageRepo, likeRepo),
	}
}

func (f *fixture) addUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := f.auth.Signup(context.Background(), SignupInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) addMessage(t *testing.T, authorID uuid.UUID, text string) *domain.Message {
	t.Helper()
	msg, err := f.messages.Create(context.Background(), authorID, text)
	require.NoError(t, err)
	return msg
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	require.NoError(t, f.follows.Follow(ctx, alice.ID, bob.ID))

	following, err := f.follows.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The edge is directional.
	following, err = f.follows.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followedBy, err := f.follows.IsFollowedBy(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, followedBy)

	require.NoError(t, f.follows.Unfollow(ctx, alice.ID, bob.ID))

	following, err = f.follows.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	require.NoError(t, f.follows.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, f.follows.Follow(ctx, alice.ID, bob.ID))

	followers, err := f.follows.ListFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, followers, 1)
}

func TestFollowSelfRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")

	err := f.follows.Follow(ctx, alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)

	// With self-follow rejected, both lookups agree the edge never exists.
	following, err := f.follows.IsFollowing(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followedBy, err := f.follows.IsFollowedBy(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, followedBy)
}

func TestFollowGraphOneDirection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addUser(t, "usera")
	b := f.addUser(t, "userb")

	require.NoError(t, f.follows.Follow(ctx, a.ID, b.ID))

	bFollowers, err := f.follows.ListFollowers(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, bFollowers, 1)
	assert.Equal(t, a.ID, bFollowers[0].ID)

	aFollowing, err := f.follows.ListFollowing(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, aFollowing, 1)
	assert.Equal(t, b.ID, aFollowing[0].ID)

	aFollowers, err := f.follows.ListFollowers(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, aFollowers)

	bFollowing, err := f.follows.ListFollowing(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, bFollowing)
}

func TestFollowUnknownTarget(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")

	err := f.follows.Follow(context.Background(), alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUnfollowMissingEdgeIsNoop(t *testing.T) {
	f := newFixture()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	assert.NoError(t, f.follows.Unfollow(context.Background(), alice.ID, bob.ID))
}

func TestListFollowingAndFollowers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	carol := f.addUser(t, "carol")

	require.NoError(t, f.follows.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, f.follows.Follow(ctx, alice.ID, carol.ID))
	require.NoError(t, f.follows.Follow(ctx, carol.ID, bob.ID))

	following, err := f.follows.ListFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, following, 2)

	followers, err := f.follows.ListFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	followers, err = f.follows.ListFollowers(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}
