package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remetra/backend/internal/apperr"
	"github.com/remetra/backend/internal/models"
)

// mockUserStore is a map-backed UserStore enforcing the same uniqueness
// rules as the Postgres schema.
type mockUserStore struct {
	users map[string]*models.User
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*models.User)}
}

func (m *mockUserStore) CreateUser(_ context.Context, u *models.User) (*models.User, error) {
	if _, ok := m.users[u.Username]; ok {
		return nil, apperr.ErrDuplicateUsername
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, apperr.ErrDuplicateEmail
		}
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.Username] = u
	return u, nil
}

func (m *mockUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, apperr.ErrNotFound
}

func (m *mockUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func newTestService(t *testing.T) (*Service, *mockUserStore) {
	t.Helper()
	users := newMockUserStore()
	svc := NewService(users, NewTokenCodec("test-secret"), nil, time.Hour)
	return svc, users
}

func register(t *testing.T, svc *Service, username, email, password string) *models.User {
	t.Helper()
	u, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, nil)
	require.NoError(t, err)
	return u
}

func TestService_Register(t *testing.T) {
	t.Parallel()
	svc, users := newTestService(t)

	weight := 64.5
	conditions := []string{"hashimoto"}
	u, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username:   "alice",
		Email:      "alice@example.com",
		Password:   "s3cret",
		Conditions: conditions,
		Weight:     &weight,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, conditions, u.Conditions)
	assert.False(t, u.CreatedAt.IsZero())

	// The password is stored hashed, never verbatim.
	stored := users.users["alice"]
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.True(t, VerifyPassword("s3cret", stored.PasswordHash))
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com", "pw")

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "different@example.com",
		Password: "pw",
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrDuplicateUsername)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com", "pw")

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "pw",
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)
}

func TestService_Register_UsernameConflictTakesPrecedence(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com", "pw")

	// Both username and email collide; the username error wins.
	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw",
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrDuplicateUsername)
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com", "s3cret")

	tok, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.Equal(t, "alice", tok.Username)
	assert.NotEmpty(t, tok.AccessToken)
}

func TestService_Login_FailsClosed(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com", "s3cret")

	// Wrong password and unknown username are indistinguishable.
	_, errWrongPassword := svc.Login(context.Background(), "alice", "wrong")
	_, errUnknownUser := svc.Login(context.Background(), "nonexistent", "s3cret")

	assert.ErrorIs(t, errWrongPassword, apperr.ErrUnauthorized)
	assert.ErrorIs(t, errUnknownUser, apperr.ErrUnauthorized)
	assert.Equal(t, errWrongPassword, errUnknownUser)
}

func TestService_CurrentUser(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com", "s3cret")

	tok, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	u, err := svc.CurrentUser(context.Background(), "Bearer "+tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestService_CurrentUser_Failures(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com", "s3cret")

	codec := NewTokenCodec("test-secret")
	valid, err := codec.Issue("alice", time.Hour)
	require.NoError(t, err)
	noSubject, err := codec.Issue("", time.Hour)
	require.NoError(t, err)
	ghost, err := codec.Issue("ghost", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"missing bearer prefix", valid},
		{"wrong scheme", "Basic " + valid},
		{"tampered token", "Bearer " + valid + "x"},
		{"missing subject claim", "Bearer " + noSubject},
		{"unknown subject", "Bearer " + ghost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CurrentUser(context.Background(), tt.header)
			assert.ErrorIs(t, err, apperr.ErrUnauthorized)
		})
	}
}
