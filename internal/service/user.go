package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/partykeep/partykeep/internal/auth"
	"github.com/partykeep/partykeep/internal/model"
	"github.com/partykeep/partykeep/internal/repository"
)

type UserService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
}

func NewUserService(users repository.UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func (s *UserService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return user, nil
}

// UpdateMe writes the allow-listed profile fields. The password digest is
// only recomputed when the submitted password differs from the stored one;
// resubmitting the current password leaves the digest untouched.
func (s *UserService) UpdateMe(ctx context.Context, userID, username, email, password string) error {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("loading user: %w", err)
	}

	fields := map[string]interface{}{
		"username": username,
		"email":    email,
	}

	if password != "" {
		unchanged, err := s.hasher.Verify(password, user.Password)
		if err != nil {
			return fmt.Errorf("verifying password: %w", err)
		}
		if !unchanged {
			digest, err := s.hasher.Hash(password)
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}
			fields["password"] = digest
		}
	}

	if err := s.users.Update(ctx, userID, fields); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}
