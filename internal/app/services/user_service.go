package services

import (
	"context"
	"fmt"

	"github.com/deren/greenhub/internal/app/models"
)

// userAdminStore is the slice of the user repository the user admin service
// needs.
type userAdminStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService defines the staff user administration operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) (*models.User, error)
}

type userServiceImpl struct {
	users userAdminStore
}

// NewUserService creates a new user service instance
func NewUserService(users userAdminStore) UserService {
	return &userServiceImpl{users: users}
}

// ListUsers returns all users ordered by username.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user and returns the removed row for the notice.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}
