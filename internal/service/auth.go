package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/partykeep/partykeep/internal/auth"
	"github.com/partykeep/partykeep/internal/model"
	"github.com/partykeep/partykeep/internal/repository"
)

// TokenPair is what login and refresh hand back to the controller.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // access token lifetime in seconds
}

// AuthService orchestrates register/login/refresh/logout. All collaborators
// are injected so tests can swap in fakes.
type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
	store  auth.TokenStore
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer, store auth.TokenStore) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		store:  store,
	}
}

// Register creates the user row. It does not log the new user in.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("looking up user: %w", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	user := &model.User{
		ID:       id.String(),
		Username: username,
		Email:    email,
		Password: digest,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// Login verifies credentials and issues an access/refresh pair. Unknown
// username and wrong password both come back as ErrInvalidCredentials so the
// response never reveals which one it was.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(ctx, user.ID)
}

// Refresh mints a new access token for the identity bound to refreshToken
// and rotates the refresh token: the presented one is revoked and a fresh
// one registered, so a replayed token fails on the next use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	registered, err := s.store.IsValid(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("checking token store: %w", err)
	}
	if !registered {
		return nil, ErrTokenNotRegistered
	}

	userID, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	pair, err := s.issuePair(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("revoking rotated token: %w", err)
	}
	return pair, nil
}

// Logout revokes the refresh token. Revoking an unknown token is a no-op,
// so calling this twice is fine.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.store.Revoke(ctx, refreshToken)
}

func (s *AuthService) issuePair(ctx context.Context, userID string) (*TokenPair, error) {
	accessToken, err := s.tokens.IssueAccess(userID)
	if err != nil {
		return nil, fmt.Errorf("issuing access token: %w", err)
	}
	refreshToken, err := s.tokens.IssueRefresh(userID)
	if err != nil {
		return nil, fmt.Errorf("issuing refresh token: %w", err)
	}
	expiresAt := time.Now().Add(s.tokens.RefreshTTL())
	if err := s.store.Register(ctx, refreshToken, userID, expiresAt); err != nil {
		return nil, fmt.Errorf("registering refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}
