package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/remetra/backend/internal/apperr"
	"github.com/remetra/backend/internal/models"
)

const bearerPrefix = "Bearer "

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service composes the credential hasher, token codec and user store into
// the registration / login / current-user flows.
type Service struct {
	users    UserStore
	codec    *TokenCodec
	cache    *AccountCache // optional, nil when Redis is not configured
	loginTTL time.Duration
}

func NewService(users UserStore, codec *TokenCodec, cache *AccountCache, loginTTL time.Duration) *Service {
	return &Service{users: users, codec: codec, cache: cache, loginTTL: loginTTL}
}

// Register creates a new account. Username collisions are reported before
// email collisions when both apply. The pre-checks are an optimization;
// the store's unique constraints remain the final arbiter and surface the
// same conflict errors.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest, dob *time.Time) (*models.User, error) {
	if _, err := s.users.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, apperr.ErrDuplicateUsername
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if _, err := s.users.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, apperr.ErrDuplicateEmail
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.users.CreateUser(ctx, &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		DOB:          dob,
		Conditions:   req.Conditions,
		Weight:       req.Weight,
	})
}

// Login verifies the credentials and mints an access token. Unknown
// username and wrong password both come back as apperr.ErrUnauthorized so
// callers cannot probe which accounts exist.
func (s *Service) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, apperr.ErrUnauthorized
	}

	token, err := s.codec.Issue(user.Username, s.loginTTL)
	if err != nil {
		return nil, err
	}
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    user.Username,
	}, nil
}

// CurrentUser resolves the account behind an Authorization header value.
// A missing Bearer prefix, a token that fails verification, an empty
// subject claim, and a subject with no matching account all surface as
// apperr.ErrUnauthorized.
func (s *Service) CurrentUser(ctx context.Context, authHeader string) (*models.User, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, apperr.ErrUnauthorized
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	subject, err := s.codec.Verify(token)
	if err != nil {
		return nil, apperr.ErrUnauthorized
	}
	if subject == "" {
		return nil, apperr.ErrUnauthorized
	}

	if s.cache != nil {
		if u, err := s.cache.Get(ctx, subject); err != nil {
			slog.Warn("profile cache read failed", "error", err)
		} else if u != nil {
			return u, nil
		}
	}

	user, err := s.users.GetUserByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			slog.Warn("profile cache write failed", "error", err)
		}
	}
	return user, nil
}
