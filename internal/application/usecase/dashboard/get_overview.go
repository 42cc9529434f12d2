// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/application/usecase/calendar"
	"github.com/atelier-crm/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// OverviewBucket groups the orders and tasks due within one period.
type OverviewBucket struct {
	Orders []*entity.Order
	Tasks  []*entity.Task
}

// Count returns the total number of due items in the bucket.
func (b OverviewBucket) Count() int {
	return len(b.Orders) + len(b.Tasks)
}

// GetOverviewOutput represents the output of the dashboard overview.
type GetOverviewOutput struct {
	Today       OverviewBucket
	Yesterday   OverviewBucket
	ThisWeek    OverviewBucket
	WeekDisplay string // e.g. "11th - 17th Jan"
}

// GetOverviewUseCase aggregates what is due today, yesterday and this week.
type GetOverviewUseCase struct {
	orderRepo adapter.OrderRepository
	taskRepo  adapter.TaskRepository
	clock     adapter.Clock
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(orderRepo adapter.OrderRepository, taskRepo adapter.TaskRepository, clock adapter.Clock) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		orderRepo: orderRepo,
		taskRepo:  taskRepo,
		clock:     clock,
	}
}

// Execute builds the overview for the user.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	now := uc.clock.Now()

	todayStart, todayEnd := dayBounds(now)
	yesterdayStart, yesterdayEnd := dayBounds(now.AddDate(0, 0, -1))

	// Sunday-to-Saturday week containing today, matching CurrentWeekRange.
	week := calendar.CurrentWeekRange(uc.clock)
	weekStart, _ := dayBounds(now.AddDate(0, 0, -int(now.Weekday())))
	_, weekEnd := dayBounds(weekStart.AddDate(0, 0, 6))

	today, err := uc.bucket(ctx, input.UserID, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	yesterday, err := uc.bucket(ctx, input.UserID, yesterdayStart, yesterdayEnd)
	if err != nil {
		return nil, err
	}
	thisWeek, err := uc.bucket(ctx, input.UserID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	return &GetOverviewOutput{
		Today:       today,
		Yesterday:   yesterday,
		ThisWeek:    thisWeek,
		WeekDisplay: week.DisplayText,
	}, nil
}

func (uc *GetOverviewUseCase) bucket(ctx context.Context, userID uuid.UUID, start, end time.Time) (OverviewBucket, error) {
	orders, err := uc.orderRepo.FindDueBetween(ctx, userID, start, end)
	if err != nil {
		return OverviewBucket{}, fmt.Errorf("failed to load due orders: %w", err)
	}
	tasks, err := uc.taskRepo.FindDueBetween(ctx, userID, start, end)
	if err != nil {
		return OverviewBucket{}, fmt.Errorf("failed to load due tasks: %w", err)
	}
	return OverviewBucket{Orders: orders, Tasks: tasks}, nil
}

// dayBounds returns the inclusive start and end instants of the calendar
// day containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
