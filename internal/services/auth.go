package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventsignup/internal/domain"
)

// dummyHash is a bcrypt hash compared against when the username does not
// resolve, so both failure modes take a comparable amount of time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type authService struct {
	logger          *slog.Logger
	userRepo        domain.UserRepository
	sessionRepo     domain.SessionRepository
	hasher          domain.PasswordHasher
	sessionLifetime time.Duration
	contextTimeout  time.Duration
}

// NewAuthService creates an AuthService with the given repositories,
// hasher, and session lifetime.
func NewAuthService(logger *slog.Logger, userRepo domain.UserRepository, sessionRepo domain.SessionRepository, hasher domain.PasswordHasher, sessionLifetime, timeout time.Duration) domain.AuthService {
	return &authService{
		logger:          logger,
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		hasher:          hasher,
		sessionLifetime: sessionLifetime,
		contextTimeout:  timeout,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "lookup user", "err", err)
		}
		_ = s.hasher.Compare(dummyHash, password)
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	// Login is a convenient moment to reap expired sessions.
	if err := s.sessionRepo.DeleteExpired(ctx); err != nil {
		s.logger.WarnContext(ctx, "reap expired sessions", "err", err)
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionLifetime),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.ErrorContext(ctx, "create session", "err", err)
		return nil, "", domain.ErrInvalidCredentials
	}
	return user, session.Token, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "lookup session", "err", err)
		}
		return "", false
	}
	return session.UserID, true
}

func (s *authService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		s.logger.ErrorContext(ctx, "delete session", "err", err)
	}
}
