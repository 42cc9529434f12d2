// Package reminder contains the deadline reminder use case.
package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/application/usecase/calendar"
)

// QueueDueRemindersOutput reports how many reminders were enqueued.
type QueueDueRemindersOutput struct {
	DateKey  string
	Enqueued int
	Skipped  int
}

// QueueDueRemindersUseCase enqueues one summary email per user with items
// due today. It is idempotent per day: users already reminded for the
// date are skipped, so the scheduler can run it on any interval.
type QueueDueRemindersUseCase struct {
	calendarRepo adapter.CalendarRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	clock        adapter.Clock
	calendarURL  string
	logger       *slog.Logger
}

// NewQueueDueRemindersUseCase creates a new QueueDueRemindersUseCase instance.
func NewQueueDueRemindersUseCase(
	calendarRepo adapter.CalendarRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	clock adapter.Clock,
	calendarURL string,
	logger *slog.Logger,
) *QueueDueRemindersUseCase {
	return &QueueDueRemindersUseCase{
		calendarRepo: calendarRepo,
		userRepo:     userRepo,
		emailService: emailService,
		clock:        clock,
		calendarURL:  calendarURL,
		logger:       logger,
	}
}

// Execute scans for users with items due today and queues their reminders.
func (uc *QueueDueRemindersUseCase) Execute(ctx context.Context) (*QueueDueRemindersOutput, error) {
	dateKey := calendar.TodayKey(uc.clock)

	userIDs, err := uc.calendarRepo.FindUsersWithItemsDueOn(ctx, dateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to find users with due items: %w", err)
	}

	out := &QueueDueRemindersOutput{DateKey: dateKey}
	for _, userID := range userIDs {
		user, err := uc.userRepo.FindByID(ctx, userID)
		if err != nil {
			uc.logger.Warn("skipping reminder, user lookup failed",
				"user_id", userID, "error", err)
			out.Skipped++
			continue
		}

		already, err := uc.emailService.HasQueuedReminder(ctx, user.Email, dateKey)
		if err != nil {
			uc.logger.Warn("skipping reminder, queue check failed",
				"user_id", userID, "error", err)
			out.Skipped++
			continue
		}
		if already {
			out.Skipped++
			continue
		}

		items, err := uc.calendarRepo.FindItemsByDate(ctx, userID, dateKey)
		if err != nil {
			uc.logger.Warn("skipping reminder, item fetch failed",
				"user_id", userID, "error", err)
			out.Skipped++
			continue
		}
		if len(items) == 0 {
			out.Skipped++
			continue
		}

		lines := make([]adapter.ReminderLine, 0, len(items))
		for _, item := range items {
			lines = append(lines, adapter.ReminderLine{
				Title:    item.Title,
				Kind:     string(item.Kind),
				Status:   item.Status,
				Priority: item.Priority,
			})
		}

		err = uc.emailService.QueueDeadlineReminderEmail(ctx, adapter.QueueDeadlineReminderInput{
			UserEmail:   user.Email,
			UserName:    user.Name,
			DueDate:     dateKey,
			Items:       lines,
			CalendarURL: uc.calendarURL,
		})
		if err != nil {
			uc.logger.Error("failed to queue deadline reminder",
				"user_id", userID, "error", err)
			out.Skipped++
			continue
		}
		out.Enqueued++
	}

	return out, nil
}
