package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"eventsignup/internal/domain"
	"eventsignup/internal/sanitize"
)

type eventService struct {
	logger         *slog.Logger
	eventRepo      domain.EventRepository
	pageSize       int
	contextTimeout time.Duration
}

// NewEventService creates an EventService over the given repository.
// pageSize is the fixed row count per page.
func NewEventService(logger *slog.Logger, eventRepo domain.EventRepository, pageSize int, timeout time.Duration) domain.EventService {
	return &eventService{
		logger:         logger,
		eventRepo:      eventRepo,
		pageSize:       pageSize,
		contextTimeout: timeout,
	}
}

// List returns one page of events plus page metadata. Storage failures are
// logged and surface as an empty page; the caller always gets a renderable
// result.
func (s *eventService) List(ctx context.Context, page int, search string) ([]*domain.Event, domain.PageInfo) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	search = normalizeSearch(search)
	params := domain.PaginationParams{Page: page, PageSize: s.pageSize}

	events, err := s.eventRepo.List(ctx, params.Offset(), s.pageSize, search)
	if err != nil {
		s.logger.ErrorContext(ctx, "list events", "err", err)
		events = []*domain.Event{}
	}
	total, err := s.eventRepo.Count(ctx, search)
	if err != nil {
		s.logger.ErrorContext(ctx, "count events", "err", err)
		total = 0
	}
	return events, domain.NewPageInfo(page, total, s.pageSize, len(events))
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) Create(ctx context.Context, name, description string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = sanitize.Name(name)
	description = sanitize.Content(description)
	// A name that was all markup sanitizes to nothing; it passed the
	// delivery-layer length check but must not persist empty.
	if name == "" {
		s.logger.InfoContext(ctx, "event rejected, name empty after sanitization")
		return false
	}

	event := domain.NewEvent(name, slugify(name), description)
	if err := s.eventRepo.Insert(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "insert event", "name", name, "err", err)
		return false
	}
	return true
}

func (s *eventService) Update(ctx context.Context, id, name, description string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = sanitize.Name(name)
	description = sanitize.Content(description)
	if name == "" {
		s.logger.InfoContext(ctx, "event update rejected, name empty after sanitization", "id", id)
		return false
	}

	if err := s.eventRepo.Update(ctx, id, name, description); err != nil {
		s.logger.ErrorContext(ctx, "update event", "id", id, "err", err)
		return false
	}
	return true
}

// normalizeSearch trims the search term so a blank query means "no search"
// rather than a filter that matches nothing.
func normalizeSearch(search string) string {
	return strings.TrimSpace(search)
}
