// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// TaskRepository defines the interface for task persistence operations.
type TaskRepository interface {
	// Create creates a new task in the database.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByUser retrieves all tasks for a user, ordered by due date.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// FindByUserAndStatus retrieves a user's tasks filtered by status.
	FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.TaskStatus) ([]*entity.Task, error)

	// FindDueBetween retrieves a user's tasks whose due date falls within
	// [start, end], ordered by due date.
	FindDueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Task, error)

	// Update updates an existing task in the database.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
