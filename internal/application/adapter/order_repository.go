// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// Create creates a new order in the database.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves all orders for a user, ordered by due date.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByUserAndStatus retrieves a user's orders filtered by status.
	FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.OrderStatus) ([]*entity.Order, error)

	// FindDueBetween retrieves a user's orders whose due date falls within
	// [start, end], ordered by due date.
	FindDueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Order, error)

	// CountCreatedPerMonth returns the number of orders created in each month
	// between start and end, keyed by "YYYY-MM".
	CountCreatedPerMonth(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[string]int, error)

	// Update updates an existing order in the database.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
