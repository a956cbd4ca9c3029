package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/user"
)

func registerRequest(username, email string) *user.RegisterRequest {
	return &user.RegisterRequest{
		Username: username,
		Password: "password123",
		Email:    email,
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	store := storage.NewMemStorage()
	svc := NewUserService(store)
	ctx := context.Background()

	created, err := svc.Register(ctx, registerRequest("newuser", "new@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "newuser", created.Username)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "password123", created.PasswordHash)
}

func TestRegister_DuplicateUsernameCaseInsensitive(t *testing.T) {
	store := storage.NewSeededMemStorage()
	svc := NewUserService(store)
	ctx := context.Background()

	before, err := store.GetUsers(ctx)
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest("SARAH_89", "other@example.com"))
	assert.ErrorIs(t, err, ErrUsernameTaken)

	after, err := store.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := storage.NewSeededMemStorage()
	svc := NewUserService(store)

	_, err := svc.Register(context.Background(), registerRequest("someone_new", "Sarah@Example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	store := storage.NewSeededMemStorage()
	svc := NewUserService(store)
	ctx := context.Background()

	u, err := svc.Login(ctx, &user.LoginRequest{Username: "sarah_89", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "sarah_89", u.Username)

	_, err = svc.Login(ctx, &user.LoginRequest{Username: "sarah_89", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown users are indistinguishable from bad passwords.
	_, err = svc.Login(ctx, &user.LoginRequest{Username: "ghost", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	store := storage.NewSeededMemStorage()
	svc := NewUserService(store)
	ctx := context.Background()

	vibe := "Quiet cocktail bars"
	updated, err := svc.UpdateProfile(ctx, 1, &user.UpdateProfileRequest{VibePref: &vibe})
	require.NoError(t, err)

	assert.Equal(t, "Quiet cocktail bars", updated.VibePref)
	// Untouched fields stay put.
	assert.Equal(t, "Sarah Johnson", updated.FullName)
	assert.Equal(t, 27, updated.Age)

	_, err = svc.UpdateProfile(ctx, 999, &user.UpdateProfileRequest{VibePref: &vibe})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
