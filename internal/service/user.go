package service

import (
	"context"
	"errors"
	"fmt"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repo"
)

// UserService implements business logic for User operations.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// Create validates the username, rejects duplicates, and persists a new user.
// Returns domain.ErrValidation if the username is missing or too long.
// Returns domain.ErrDuplicate if a user with that username already exists.
func (s *UserService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if err := checkStruct(user); err != nil {
		return domain.User{}, err
	}

	_, err := s.users.GetByUsername(ctx, user.Username)
	switch {
	case err == nil:
		return domain.User{}, fmt.Errorf("service.UserService.Create: user already exists: %w", domain.ErrDuplicate)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}

	// The unique constraint on username still backstops concurrent creates;
	// the repo reports that as domain.ErrDuplicate too.
	result, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}
	return result, nil
}

// List returns all users.
// Returns domain.ErrNotFound when no users exist at all, so the handler can
// report an empty store explicitly rather than serving an empty array.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UserService.List: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("service.UserService.List: no users exist: %w", domain.ErrNotFound)
	}
	return users, nil
}
