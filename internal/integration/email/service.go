// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueDeadlineReminderEmail queues a deadline reminder email summarizing
// the recipient's items due on one date.
func (s *Service) QueueDeadlineReminderEmail(ctx context.Context, input adapter.QueueDeadlineReminderInput) error {
	subject := fmt.Sprintf("You have %d item(s) due today - Atelier CRM", len(input.Items))

	items := make([]map[string]interface{}, 0, len(input.Items))
	for _, line := range input.Items {
		items = append(items, map[string]interface{}{
			"title":    line.Title,
			"kind":     line.Kind,
			"status":   line.Status,
			"priority": line.Priority,
		})
	}

	templateData := map[string]interface{}{
		"user_name":    input.UserName,
		"due_date":     input.DueDate,
		"items":        items,
		"calendar_url": input.CalendarURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateDeadlineReminder,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue deadline reminder email",
			err,
		)
	}

	return nil
}

// HasQueuedReminder reports whether a deadline reminder for the given
// recipient and due date is already queued or sent. Failed jobs do not
// count, so a permanently failed reminder can be re-issued.
func (s *Service) HasQueuedReminder(ctx context.Context, recipientEmail, dueDate string) (bool, error) {
	jobs, err := s.queue.GetByRecipient(ctx, recipientEmail)
	if err != nil {
		return false, err
	}

	for _, job := range jobs {
		if job.TemplateType != entity.TemplateDeadlineReminder {
			continue
		}
		if job.Status == entity.EmailStatusFailed {
			continue
		}
		if date, ok := job.TemplateData["due_date"].(string); ok && date == dueDate {
			return true, nil
		}
	}
	return false, nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
