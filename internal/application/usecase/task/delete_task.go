package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
}

// DeleteTaskUseCase handles task deletion logic.
type DeleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
	cache    adapter.CalendarCache
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
// The cache may be nil.
func NewDeleteTaskUseCase(taskRepo adapter.TaskRepository, cache adapter.CalendarCache) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
		cache:    cache,
	}
}

// Execute performs the task deletion.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) error {
	task, err := uc.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTaskNotFound) {
			return domainerror.NewTaskError(
				domainerror.ErrCodeTaskNotFound,
				"task not found",
				domainerror.ErrTaskNotFound,
			)
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if task.UserID != input.UserID {
		return domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	if err := uc.taskRepo.Delete(ctx, input.TaskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	invalidateDueMonth(ctx, uc.cache, input.UserID, task.DueDate)

	return nil
}
