// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// CalendarRepository builds the calendar read model from due-dated tasks
// and orders.
type CalendarRepository interface {
	// FindItemsByMonth retrieves all calendar items whose due date falls in
	// the given month (0-based), ordered by due date. This is the
	// month-level fetch backing the grid.
	FindItemsByMonth(ctx context.Context, userID uuid.UUID, year, month int) ([]entity.CalendarItem, error)

	// FindItemsByDate retrieves the authoritative item list for one date
	// key. This is the day-level fetch backing the detail panel.
	FindItemsByDate(ctx context.Context, userID uuid.UUID, dateKey string) ([]entity.CalendarItem, error)

	// FindUsersWithItemsDueOn returns the IDs of users with at least one
	// item due on the given date key, for reminder scheduling.
	FindUsersWithItemsDueOn(ctx context.Context, dateKey string) ([]uuid.UUID, error)
}

// CalendarCache caches month-level calendar items keyed by user and month.
// Entries are invalidated by task and order writes and expire on a short TTL.
type CalendarCache interface {
	// GetMonth returns the cached items for the month, or ok=false on a miss.
	GetMonth(ctx context.Context, userID uuid.UUID, year, month int) (items []entity.CalendarItem, ok bool)

	// SetMonth stores the items for the month.
	SetMonth(ctx context.Context, userID uuid.UUID, year, month int, items []entity.CalendarItem)

	// InvalidateMonth drops any cached entry for the month.
	InvalidateMonth(ctx context.Context, userID uuid.UUID, year, month int)
}
