// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/email/templates"
)

// Worker drains the email queue: it claims due jobs in batches, renders
// their templates and hands them to the sender, with retry bookkeeping on
// the job itself.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start runs the worker loop until the context is cancelled. The first
// batch is processed immediately, then one per poll interval.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		w.processBatch(ctx)

		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
		}
	}
}

// ProcessNow drains one batch immediately, outside the poll loop.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}

func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}
	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))
	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.processJob(ctx, job)
	}
}

// processJob claims one job, renders and sends it, and records the result.
func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		// A template that cannot render will not render on retry either.
		w.recordFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)
		w.recordFailure(ctx, job, err, isPermanentSendError(err))
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}
	logger.Info("Email sent successfully", "resend_id", result.ResendID)
}

func isPermanentSendError(err error) bool {
	var emailErr *domainerror.EmailError
	return errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure
}

// renderTemplate renders the appropriate template for the job.
func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	templateName := string(job.TemplateType)

	var data interface{}
	switch job.TemplateType {
	case entity.TemplateDeadlineReminder:
		data = templates.DeadlineReminderData{
			UserName:    getString(job.TemplateData, "user_name"),
			DueDate:     getString(job.TemplateData, "due_date"),
			Items:       getReminderItems(job.TemplateData, "items"),
			CalendarURL: getString(job.TemplateData, "calendar_url"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type",
			domainerror.ErrInvalidTemplate,
		)
	}

	return w.renderer.Render(templateName, data)
}

// recordFailure books a failed attempt on the job and logs the outcome.
func (w *Worker) recordFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getReminderItems extracts the item lines from template data. Items
// round-trip through JSON in the queue, so each entry is a generic map.
func getReminderItems(data map[string]interface{}, key string) []templates.ReminderItem {
	var maps []map[string]interface{}
	switch v := data[key].(type) {
	case []interface{}:
		for _, entry := range v {
			if m, ok := entry.(map[string]interface{}); ok {
				maps = append(maps, m)
			}
		}
	case []map[string]interface{}:
		maps = v
	default:
		return nil
	}

	items := make([]templates.ReminderItem, 0, len(maps))
	for _, m := range maps {
		items = append(items, templates.ReminderItem{
			Title:    getString(m, "title"),
			Kind:     getString(m, "kind"),
			Status:   getString(m, "status"),
			Priority: getString(m, "priority"),
		})
	}
	return items
}
