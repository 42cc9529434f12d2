// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueDeadlineReminderEmail queues a deadline reminder email.
	QueueDeadlineReminderEmail(ctx context.Context, input QueueDeadlineReminderInput) error

	// HasQueuedReminder reports whether a deadline reminder for the given
	// recipient and due date is already queued or sent.
	HasQueuedReminder(ctx context.Context, recipientEmail, dueDate string) (bool, error)
}

// ReminderLine is a single due item rendered into a reminder email.
type ReminderLine struct {
	Title    string
	Kind     string
	Status   string
	Priority string
}

// QueueDeadlineReminderInput represents the input for queueing a deadline reminder email.
type QueueDeadlineReminderInput struct {
	UserEmail   string
	UserName    string
	DueDate     string
	Items       []ReminderLine
	CalendarURL string
}
