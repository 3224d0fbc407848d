package domain

import (
	"context"
	"time"
)

// Session maps an opaque token to an authenticated user for a bounded
// lifetime. Logout deletes the row immediately; expiry is enforced by the
// lookup predicate, so stale rows are invisible before they are reaped.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	Created   time.Time
}

// SessionRepository defines the interface for server-side session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// Get returns the session for token, or ErrNotFound when the token is
	// unknown or the session has expired.
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

// SessionVerifier is the guard predicate used before administrative calls.
type SessionVerifier interface {
	// Authenticate resolves a session token to a user ID. The boolean is
	// false for missing, unknown, or expired tokens.
	Authenticate(ctx context.Context, token string) (string, bool)
}

// AuthService defines login, logout, and the request guard.
type AuthService interface {
	SessionVerifier
	// Login verifies the credentials and, on success, returns the identity
	// and a new session token. Every failure mode surfaces as
	// ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*User, string, error)
	Logout(ctx context.Context, token string)
}
