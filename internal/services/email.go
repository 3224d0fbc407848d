package services

import (
	"context"
	"fmt"

	"eventsignup/internal/domain"
)

type emailService struct {
	mailer        domain.Mailer
	renderer      domain.EmailTemplateRenderer
	notifyAddress string
}

// NewEmailService creates an EmailService that renders templates and sends
// them through the given mailer. Returns nil when no notify address is
// configured, which disables notifications entirely.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, notifyAddress string) domain.EmailService {
	if notifyAddress == "" {
		return nil
	}
	return &emailService{
		mailer:        mailer,
		renderer:      renderer,
		notifyAddress: notifyAddress,
	}
}

func (s *emailService) SendSignupNotification(_ context.Context, data *domain.SignupNotificationEmailData) error {
	subject, html, text, err := s.renderer.Render("signup_notification", data)
	if err != nil {
		return fmt.Errorf("render signup notification: %w", err)
	}
	if err := s.mailer.Send(s.notifyAddress, subject, html, text); err != nil {
		return fmt.Errorf("send signup notification: %w", err)
	}
	return nil
}
