package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SignupNotificationEmailData holds data for the new-signup notification
// sent to the configured administrator address.
type SignupNotificationEmailData struct {
	EventName  string
	SignupName string
	Comment    string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSignupNotification(ctx context.Context, data *SignupNotificationEmailData) error
}
