package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// UpdateTaskInput represents the input for task update. Nil fields are
// left unchanged.
type UpdateTaskInput struct {
	UserID      uuid.UUID
	TaskID      uuid.UUID
	TaskName    *string
	DueDate     *time.Time
	Priority    *entity.TaskPriority
	Status      *entity.TaskStatus
	Description *string
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task *entity.Task
}

// UpdateTaskUseCase handles task update logic.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
	cache    adapter.CalendarCache
	clock    adapter.Clock
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
// The cache may be nil.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository, cache adapter.CalendarCache, clock adapter.Clock) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
		cache:    cache,
		clock:    clock,
	}
}

// Execute performs the task update.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	task, err := uc.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTaskNotFound) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeTaskNotFound,
				"task not found",
				domainerror.ErrTaskNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.UserID != input.UserID {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	previousDue := task.DueDate

	if input.Status != nil {
		if !isValidStatus(*input.Status) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskStatus,
				"status must be 'Pending', 'In Progress' or 'Completed'",
				domainerror.ErrInvalidTaskStatus,
			)
		}
		if *input.Status == entity.TaskStatusCompleted && task.Status != entity.TaskStatusCompleted {
			task.Complete(uc.clock.Now().UTC())
		} else {
			task.Status = *input.Status
		}
	}
	if input.Priority != nil {
		if !isValidPriority(*input.Priority) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskPriority,
				"priority must be 'Low', 'Medium' or 'High'",
				domainerror.ErrInvalidTaskPriority,
			)
		}
		task.Priority = *input.Priority
	}
	if input.TaskName != nil {
		task.TaskName = *input.TaskName
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	task.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	// Both the previous and the new due month may have cached grids.
	invalidateDueMonth(ctx, uc.cache, input.UserID, previousDue)
	invalidateDueMonth(ctx, uc.cache, input.UserID, task.DueDate)

	return &UpdateTaskOutput{Task: task}, nil
}
