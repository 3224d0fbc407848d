package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eventsignup/internal/domain"
	"eventsignup/internal/sanitize"
)

type signupService struct {
	logger         *slog.Logger
	signupRepo     domain.SignupRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	strictRefs     bool
	pageSize       int
	contextTimeout time.Duration
}

// NewSignupService creates a SignupService. When strictRefs is true,
// Create verifies the referenced event exists before inserting; otherwise
// the reference is accepted as-is. emailService may be nil.
func NewSignupService(logger *slog.Logger, signupRepo domain.SignupRepository, eventRepo domain.EventRepository, emailService domain.EmailService, strictRefs bool, pageSize int, timeout time.Duration) domain.SignupService {
	return &signupService{
		logger:         logger,
		signupRepo:     signupRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		strictRefs:     strictRefs,
		pageSize:       pageSize,
		contextTimeout: timeout,
	}
}

func (s *signupService) List(ctx context.Context, page int, search string) ([]*domain.Signup, domain.PageInfo) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	search = normalizeSearch(search)
	params := domain.PaginationParams{Page: page, PageSize: s.pageSize}

	signups, err := s.signupRepo.List(ctx, params.Offset(), s.pageSize, search)
	if err != nil {
		s.logger.ErrorContext(ctx, "list signups", "err", err)
		signups = []*domain.Signup{}
	}
	total, err := s.signupRepo.Count(ctx, search)
	if err != nil {
		s.logger.ErrorContext(ctx, "count signups", "err", err)
		total = 0
	}
	return signups, domain.NewPageInfo(page, total, s.pageSize, len(signups))
}

func (s *signupService) Create(ctx context.Context, name, comment, eventID string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = sanitize.Name(name)
	comment = sanitize.Content(comment)
	if name == "" {
		s.logger.InfoContext(ctx, "signup rejected, name empty after sanitization", "event", eventID)
		return false
	}

	var eventName string
	if s.strictRefs {
		event, err := s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.logger.InfoContext(ctx, "signup rejected, event missing", "event", eventID)
			} else {
				s.logger.ErrorContext(ctx, "verify event for signup", "event", eventID, "err", err)
			}
			return false
		}
		eventName = event.Name
	}

	signup := domain.NewSignup(name, comment, eventID)
	if err := s.signupRepo.Insert(ctx, signup); err != nil {
		s.logger.ErrorContext(ctx, "insert signup", "event", eventID, "err", err)
		return false
	}

	if s.emailService != nil {
		data := &domain.SignupNotificationEmailData{
			EventName:  eventName,
			SignupName: name,
			Comment:    comment,
		}
		if data.EventName == "" {
			data.EventName = eventID
		}
		// Notification failure never fails the signup.
		if err := s.emailService.SendSignupNotification(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "signup notification", "err", err)
		}
	}
	return true
}
