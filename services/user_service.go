package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/user"
)

type UserService struct {
	store storage.Storage
}

func NewUserService(store storage.Storage) *UserService {
	return &UserService{store: store}
}

// Register creates an account. Username and email are matched
// case-insensitively against existing accounts before the insert.
func (s *UserService) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, error) {
	if _, err := s.store.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.store.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.store.CreateUser(ctx, &user.InsertUser{
		Username:         req.Username,
		PasswordHash:     string(hash),
		Email:            req.Email,
		FullName:         req.FullName,
		Age:              req.Age,
		Gender:           req.Gender,
		ProfileImage:     req.ProfileImage,
		DrinkPreferences: req.DrinkPreferences,
		MusicTaste:       req.MusicTaste,
		VibePref:         req.VibePref,
	})
}

// Login checks the credentials and returns the account. A missing user
// and a wrong password both come back as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, req *user.LoginRequest) (*user.User, error) {
	u, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*user.User, error) {
	return s.store.GetUser(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id int, req *user.UpdateProfileRequest) (*user.User, error) {
	return s.store.UpdateUser(ctx, id, req)
}
