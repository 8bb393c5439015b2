package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/auth"
)

// userStore is the slice of the user repository the auth service needs.
type userStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService defines signup and login operations.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type authServiceImpl struct {
	users  userStore
	logger zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users userStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{users: users, logger: logger}
}

// Signup registers a new user with a hashed password.
func (s *authServiceImpl) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	user.ID = id

	s.logger.Info().Int64("userID", id).Str("username", username).Msg("User registered")
	return user, nil
}

// Login verifies credentials and returns the matching user.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Same error as a bad password; do not reveal which part failed.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
