// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	UserID      uuid.UUID
	TaskName    string
	DueDate     time.Time
	Priority    entity.TaskPriority // Optional, defaults to Medium
	Description string
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo adapter.TaskRepository
	cache    adapter.CalendarCache
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
// The cache may be nil.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository, cache adapter.CalendarCache) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
		cache:    cache,
	}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	name := strings.TrimSpace(input.TaskName)
	if name == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeMissingTaskFields,
			"task name is required",
			domainerror.ErrMissingTaskFields,
		)
	}

	if input.DueDate.IsZero() {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidDueDate,
			"due date is required",
			domainerror.ErrInvalidDueDate,
		)
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}
	if !isValidPriority(priority) {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskPriority,
			"priority must be 'Low', 'Medium' or 'High'",
			domainerror.ErrInvalidTaskPriority,
		)
	}

	task := entity.NewTask(input.UserID, name, input.DueDate, priority, input.Description)

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	invalidateDueMonth(ctx, uc.cache, input.UserID, task.DueDate)

	return &CreateTaskOutput{Task: task}, nil
}

// isValidStatus validates the task status.
func isValidStatus(status entity.TaskStatus) bool {
	return status == entity.TaskStatusPending ||
		status == entity.TaskStatusInProgress ||
		status == entity.TaskStatusCompleted
}

// isValidPriority validates the task priority.
func isValidPriority(priority entity.TaskPriority) bool {
	return priority == entity.TaskPriorityLow ||
		priority == entity.TaskPriorityMedium ||
		priority == entity.TaskPriorityHigh
}

// invalidateDueMonth drops the cached calendar month containing the due
// date.
func invalidateDueMonth(ctx context.Context, cache adapter.CalendarCache, userID uuid.UUID, dueDate time.Time) {
	if cache == nil || dueDate.IsZero() {
		return
	}
	cache.InvalidateMonth(ctx, userID, dueDate.Year(), int(dueDate.Month())-1)
}
