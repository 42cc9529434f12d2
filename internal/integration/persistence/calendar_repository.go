// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	"github.com/atelier-crm/backend/internal/integration/persistence/model"
)

// calendarRepository implements the adapter.CalendarRepository interface.
// It builds the calendar read model by merging due-dated tasks and orders.
type calendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository creates a new calendar repository instance.
func NewCalendarRepository(db *gorm.DB) adapter.CalendarRepository {
	return &calendarRepository{
		db: db,
	}
}

// FindItemsByMonth retrieves all calendar items whose due date falls in
// the given month (0-based), ordered by due date.
func (r *calendarRepository) FindItemsByMonth(ctx context.Context, userID uuid.UUID, year, month int) ([]entity.CalendarItem, error) {
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return r.findItemsBetween(ctx, userID, start, end)
}

// FindItemsByDate retrieves the authoritative item list for one date key.
func (r *calendarRepository) FindItemsByDate(ctx context.Context, userID uuid.UUID, dateKey string) ([]entity.CalendarItem, error) {
	day, err := time.ParseInLocation("2006-01-02", dateKey, time.Local)
	if err != nil {
		return nil, err
	}
	end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return r.findItemsBetween(ctx, userID, day, end)
}

// FindUsersWithItemsDueOn returns the IDs of users with at least one item
// due on the given date key.
func (r *calendarRepository) FindUsersWithItemsDueOn(ctx context.Context, dateKey string) ([]uuid.UUID, error) {
	day, err := time.ParseInLocation("2006-01-02", dateKey, time.Local)
	if err != nil {
		return nil, err
	}
	end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)

	seen := make(map[uuid.UUID]struct{})

	var taskUsers []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Distinct("user_id").
		Where("due_date >= ? AND due_date <= ?", day, end).
		Pluck("user_id", &taskUsers)
	if result.Error != nil {
		return nil, result.Error
	}

	var orderUsers []uuid.UUID
	result = r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Distinct("user_id").
		Where("due_date >= ? AND due_date <= ?", day, end).
		Pluck("user_id", &orderUsers)
	if result.Error != nil {
		return nil, result.Error
	}

	userIDs := make([]uuid.UUID, 0, len(taskUsers)+len(orderUsers))
	for _, id := range append(taskUsers, orderUsers...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		userIDs = append(userIDs, id)
	}
	return userIDs, nil
}

// findItemsBetween loads tasks and orders due within [start, end] and
// merges them into one due-date-ordered item list.
func (r *calendarRepository) findItemsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entity.CalendarItem, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND due_date >= ? AND due_date <= ?", userID, start, end).
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}

	var orderModels []model.OrderModel
	result = r.db.WithContext(ctx).
		Where("user_id = ? AND due_date >= ? AND due_date <= ?", userID, start, end).
		Find(&orderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]entity.CalendarItem, 0, len(taskModels)+len(orderModels))
	for _, m := range taskModels {
		items = append(items, entity.CalendarItem{
			ID:       m.ID.String(),
			Title:    m.TaskName,
			DueDate:  m.DueDate.Format(time.RFC3339),
			Kind:     entity.ItemKindTask,
			Status:   m.Status,
			Priority: m.Priority,
		})
	}
	for _, m := range orderModels {
		if m.DueDate == nil {
			continue
		}
		items = append(items, entity.CalendarItem{
			ID:      m.ID.String(),
			Title:   m.CustomerName,
			DueDate: m.DueDate.Format(time.RFC3339),
			Kind:    entity.ItemKindOrder,
			Status:  m.Status,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate < items[j].DueDate
	})
	return items, nil
}
