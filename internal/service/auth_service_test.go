package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbler/internal/domain"
	"warbler/internal/repository/memory"
)

func newAuthService() (*AuthService, *memory.Store) {
	store := memory.NewStore()
	return NewAuthService(memory.NewUserRepo(store)), store
}

func signupUser(t *testing.T, svc *AuthService, username, email string) *domain.User {
	t.Helper()
	user, err := svc.Signup(context.Background(), SignupInput{
		Username: username,
		Email:    email,
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestSignup(t *testing.T) {
	svc, _ := newAuthService()

	user := signupUser(t, svc, "alice", "alice@example.com")

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.Contains(t, user.PasswordHash, "$2a$")
	assert.Equal(t, domain.DefaultImageURL, user.ImageURL)
	assert.Equal(t, domain.DefaultHeaderImageURL, user.HeaderImageURL)
}

func TestSignupCustomImage(t *testing.T) {
	svc, _ := newAuthService()

	user, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
		ImageURL: "https://example.com/me.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/me.png", user.ImageURL)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService()
	signupUser(t, svc, "alice", "alice@example.com")

	_, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	signupUser(t, svc, "alice", "alice@example.com")

	_, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newAuthService()
	created := signupUser(t, svc, "alice", "alice@example.com")

	user, err := svc.Authenticate(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthenticateFailures(t *testing.T) {
	svc, _ := newAuthService()
	signupUser(t, svc, "alice", "alice@example.com")

	// A wrong password and an unknown username look identical to the
	// caller: nil user, nil error.
	user, err := svc.Authenticate(context.Background(), "alice", "wrongpass")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.Authenticate(context.Background(), "nobody", "secret1")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
