package domain

import (
	"context"
	"time"
)

// Event represents a browsable event that visitors can sign up for
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// NewEvent returns a new Event with the given fields. ID and Created are
// set by the repository on insert. The slug is a projection of the name at
// creation time and is never re-derived on update.
func NewEvent(name, slug, description string) *Event {
	return &Event{
		Name:        name,
		Slug:        slug,
		Description: description,
	}
}

// EventRepository defines the interface for event storage.
// List and Count apply full-text search over name and description when
// search is non-empty; an empty search term means no filter.
type EventRepository interface {
	List(ctx context.Context, offset, limit int, search string) ([]*Event, error)
	Count(ctx context.Context, search string) (int, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Insert(ctx context.Context, event *Event) error
	Update(ctx context.Context, id, name, description string) error
}

// EventService is the fail-soft boundary the presentation layer calls.
// List never fails: on a storage error it returns an empty page and logs.
// Create and Update report success as a boolean, swallowing the cause.
type EventService interface {
	List(ctx context.Context, page int, search string) ([]*Event, PageInfo)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, name, description string) bool
	Update(ctx context.Context, id, name, description string) bool
}
