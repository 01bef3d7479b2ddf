package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/partykeep/partykeep/internal/auth"
	"github.com/partykeep/partykeep/internal/model"
	"github.com/partykeep/partykeep/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo keeps users in a map, matching the repository contract
// (ErrNotFound on missing rows).
type fakeUserRepo struct {
	byUsername map[string]*model.User
	byID       map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: make(map[string]*model.User),
		byID:       make(map[string]*model.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == "" {
		id, _ := uuid.NewV7()
		user.ID = id.String()
	}
	f.byUsername[user.Username] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	user, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := fields["username"]; ok {
		delete(f.byUsername, user.Username)
		user.Username = v.(string)
		f.byUsername[user.Username] = user
	}
	if v, ok := fields["email"]; ok {
		user.Email = v.(string)
	}
	if v, ok := fields["password"]; ok {
		user.Password = v.(string)
	}
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *auth.TokenIssuer) {
	t.Helper()
	repo := newFakeUserRepo()
	issuer := auth.NewTokenIssuer("test-access", "test-refresh", time.Hour, 24*time.Hour)
	svc := NewAuthService(repo, auth.NewPasswordHasher(), issuer, auth.NewMemoryTokenStore())
	return svc, repo, issuer
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, issuer := newTestAuthService(t)

	require.NoError(t, svc.Register(ctx, "frodo", "frodo@shire.example", "second-breakfast"))

	pair, err := svc.Login(ctx, "frodo", "second-breakfast")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	// The access token must carry the registered user's identity.
	userID, err := issuer.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, userID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	require.NoError(t, svc.Register(ctx, "frodo", "frodo@shire.example", "second-breakfast"))

	err := svc.Register(ctx, "frodo", "other@shire.example", "elevenses")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	require.NoError(t, svc.Register(ctx, "frodo", "frodo@shire.example", "second-breakfast"))

	_, errWrongPass := svc.Login(ctx, "frodo", "wrong")
	_, errNoUser := svc.Login(ctx, "sauron", "whatever")

	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	// Identical error values: nothing leaks about which field was wrong.
	assert.Equal(t, errWrongPass, errNoUser)
}

func TestRefresh_RotatesToken(t *testing.T) {
	ctx := context.Background()
	svc, _, issuer := newTestAuthService(t)

	require.NoError(t, svc.Register(ctx, "frodo", "frodo@shire.example", "second-breakfast"))
	pair, err := svc.Login(ctx, "frodo", "second-breakfast")
	require.NoError(t, err)

	originalID, err := issuer.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)

	next, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// New access token binds the same identity.
	refreshedID, err := issuer.VerifyAccess(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, originalID, refreshedID)

	// The used refresh token was rotated out; replaying it fails.
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenNotRegistered)

	// The replacement works.
	_, err = svc.Refresh(ctx, next.RefreshToken)
	require.NoError(t, err)
}

func TestLogin_SameSecondSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	require.NoError(t, svc.Register(ctx, "frodo", "frodo@shire.example", "second-breakfast"))

	// Two logins in quick succession must yield distinct refresh tokens;
	// otherwise logging out one session kills the other.
	first, err := svc.Login(ctx, "frodo", "second-breakfast")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "frodo", "second-breakfast")
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	require.NoError(t, svc.Logout(ctx, first.RefreshToken))

	_, err = svc.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)
}

func TestRefresh_UnregisteredToken(t *testing.T) {
	ctx := context.Background()
	svc, _, issuer := newTestAuthService(t)

	// Validly signed but never issued through login: the store has no record.
	forged, err := issuer.IssueRefresh("user-999")
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, forged)
	assert.ErrorIs(t, err, ErrTokenNotRegistered)
}

func TestRefresh_AfterLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	require.NoError(t, svc.Register(ctx, "frodo", "frodo@shire.example", "second-breakfast"))
	pair, err := svc.Login(ctx, "frodo", "second-breakfast")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.RefreshToken))

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenNotRegistered)
}

func TestLogout_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	require.NoError(t, svc.Register(ctx, "frodo", "frodo@shire.example", "second-breakfast"))
	pair, err := svc.Login(ctx, "frodo", "second-breakfast")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.RefreshToken))
	require.NoError(t, svc.Logout(ctx, pair.RefreshToken))
	require.NoError(t, svc.Logout(ctx, "never-issued"))
}
