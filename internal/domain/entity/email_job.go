// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the status of an email job in the queue.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType names an email template known to the renderer.
type EmailTemplateType string

const (
	TemplateDeadlineReminder EmailTemplateType = "deadline_reminder"
)

// retryDelays is the backoff schedule between send attempts.
var retryDelays = []time.Duration{0, 1 * time.Minute, 5 * time.Minute}

// EmailJob represents an email in the queue waiting to be sent.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending EmailJob scheduled for immediate delivery.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    len(retryDelays),
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the job as claimed by a worker.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery and the provider's message ID.
func (e *EmailJob) MarkSent(resendID string) {
	now := time.Now().UTC()
	e.Status = EmailStatusSent
	e.ResendID = resendID
	e.ProcessedAt = &now
}

// MarkFailed records a failed attempt. Permanent failures, and jobs out
// of attempts, are dead; anything else goes back to pending with the next
// backoff delay.
func (e *EmailJob) MarkFailed(err error, permanent bool) {
	e.Attempts++
	e.LastError = err.Error()

	if permanent || e.Attempts >= e.MaxAttempts {
		now := time.Now().UTC()
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	delay := retryDelays[len(retryDelays)-1]
	if e.Attempts < len(retryDelays) {
		delay = retryDelays[e.Attempts]
	}
	e.Status = EmailStatusPending
	e.ScheduledAt = time.Now().UTC().Add(delay)
}
