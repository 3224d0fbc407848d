package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventsignup/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// eventSearchClause is the fixed full-text filter appended when a search
// term is present. The term is always bound positionally; no user input
// ever reaches the statement text.
const eventSearchClause = `
		WHERE to_tsvector('english', name) @@ plainto_tsquery('english', %[1]s)
		   OR to_tsvector('english', description) @@ plainto_tsquery('english', %[1]s)`

func (r *eventRepository) List(ctx context.Context, offset, limit int, search string) ([]*domain.Event, error) {
	args := []any{offset, limit}
	clause := ""
	if search != "" {
		clause = fmt.Sprintf(eventSearchClause, "$3")
		args = append(args, search)
	}
	// ORDER BY created, id keeps paging stable across requests.
	query := fmt.Sprintf(`
		SELECT id, name, slug, description, created
		FROM events%s
		ORDER BY created, id
		OFFSET $1 LIMIT $2
	`, clause)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Slug, &e.Description, &e.Created); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Count(ctx context.Context, search string) (int, error) {
	args := []any{}
	clause := ""
	if search != "" {
		clause = fmt.Sprintf(eventSearchClause, "$1")
		args = append(args, search)
	}
	query := fmt.Sprintf(`SELECT COUNT(*) AS count FROM events%s`, clause)
	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, slug, description, created
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Slug, &e.Description, &e.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Insert(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, created
	`
	err := r.DB.QueryRowContext(ctx, query, e.Name, e.Slug, e.Description).Scan(&e.ID, &e.Created)
	if err != nil {
		return mapConstraintErr(err)
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, id, name, description string) error {
	query := `UPDATE events SET name = $1, description = $2 WHERE id = $3`
	result, err := r.DB.ExecContext(ctx, query, name, description, id)
	if err != nil {
		return mapConstraintErr(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
