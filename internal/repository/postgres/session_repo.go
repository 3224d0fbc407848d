package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventsignup/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository returns a domain.SessionRepository implemented with Postgres.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created
	`
	err := r.DB.QueryRowContext(ctx, query, s.Token, s.UserID, s.ExpiresAt).Scan(&s.Created)
	if err != nil {
		return mapConstraintErr(err)
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	// Expiry is enforced in the predicate so an expired session is
	// indistinguishable from a missing one.
	query := `
		SELECT token, user_id, expires_at, created
		FROM sessions
		WHERE token = $1 AND expires_at > NOW()
	`
	s := &domain.Session{}
	err := r.DB.QueryRowContext(ctx, query, token).Scan(&s.Token, &s.UserID, &s.ExpiresAt, &s.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	_, err := r.DB.ExecContext(ctx, query, token)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) error {
	query := `DELETE FROM sessions WHERE expires_at <= NOW()`
	_, err := r.DB.ExecContext(ctx, query)
	return err
}
