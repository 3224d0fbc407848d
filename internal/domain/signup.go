package domain

import (
	"context"
	"time"
)

// Signup represents a visitor's registration for an event. Signups are
// immutable once created. The Event field is a soft reference: the data
// layer does not enforce that the referenced event exists.
// swagger:model Signup
type Signup struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Comment string    `json:"comment"`
	Event   string    `json:"event"`
	Created time.Time `json:"created"`
}

// NewSignup returns a new Signup with the given fields. ID and Created are
// set by the repository on insert.
func NewSignup(name, comment, eventID string) *Signup {
	return &Signup{
		Name:    name,
		Comment: comment,
		Event:   eventID,
	}
}

// SignupRepository defines the interface for signup storage.
// List and Count apply full-text search over name and comment when search
// is non-empty.
type SignupRepository interface {
	List(ctx context.Context, offset, limit int, search string) ([]*Signup, error)
	Count(ctx context.Context, search string) (int, error)
	Insert(ctx context.Context, signup *Signup) error
}

// SignupService is the fail-soft boundary for signup operations.
type SignupService interface {
	List(ctx context.Context, page int, search string) ([]*Signup, PageInfo)
	Create(ctx context.Context, name, comment, eventID string) bool
}
