package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventsignup/internal/domain"
)

type signupRepository struct {
	DB *sql.DB
}

func NewSignupRepository(db *sql.DB) domain.SignupRepository {
	return &signupRepository{
		DB: db,
	}
}

const signupSearchClause = `
		WHERE to_tsvector('english', name) @@ plainto_tsquery('english', %[1]s)
		   OR to_tsvector('english', comment) @@ plainto_tsquery('english', %[1]s)`

func (r *signupRepository) List(ctx context.Context, offset, limit int, search string) ([]*domain.Signup, error) {
	args := []any{offset, limit}
	clause := ""
	if search != "" {
		clause = fmt.Sprintf(signupSearchClause, "$3")
		args = append(args, search)
	}
	query := fmt.Sprintf(`
		SELECT id, name, comment, event, created
		FROM signup%s
		ORDER BY created, id
		OFFSET $1 LIMIT $2
	`, clause)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	signups := make([]*domain.Signup, 0)
	for rows.Next() {
		s := &domain.Signup{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Comment, &s.Event, &s.Created); err != nil {
			return nil, err
		}
		signups = append(signups, s)
	}
	return signups, rows.Err()
}

func (r *signupRepository) Count(ctx context.Context, search string) (int, error) {
	args := []any{}
	clause := ""
	if search != "" {
		clause = fmt.Sprintf(signupSearchClause, "$1")
		args = append(args, search)
	}
	query := fmt.Sprintf(`SELECT COUNT(*) AS count FROM signup%s`, clause)
	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *signupRepository) Insert(ctx context.Context, s *domain.Signup) error {
	// The event reference is deliberately not validated here; strict
	// checking happens in the service when enabled.
	query := `
		INSERT INTO signup (name, comment, event)
		VALUES ($1, $2, $3)
		RETURNING id, created
	`
	err := r.DB.QueryRowContext(ctx, query, s.Name, s.Comment, s.Event).Scan(&s.ID, &s.Created)
	if err != nil {
		return mapConstraintErr(err)
	}
	return nil
}
