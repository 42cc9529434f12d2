package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// ListTasksInput represents the input for listing tasks.
type ListTasksInput struct {
	UserID uuid.UUID
	Status entity.TaskStatus // Optional status filter
}

// ListTasksOutput represents the output of listing tasks.
type ListTasksOutput struct {
	Tasks []*entity.Task
}

// ListTasksUseCase handles listing a user's tasks.
type ListTasksUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
	}
}

// Execute retrieves the user's tasks, optionally filtered by status.
func (uc *ListTasksUseCase) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	if input.Status != "" && !isValidStatus(input.Status) {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskStatus,
			"status must be 'Pending', 'In Progress' or 'Completed'",
			domainerror.ErrInvalidTaskStatus,
		)
	}

	var (
		tasks []*entity.Task
		err   error
	)
	if input.Status != "" {
		tasks, err = uc.taskRepo.FindByUserAndStatus(ctx, input.UserID, input.Status)
	} else {
		tasks, err = uc.taskRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: tasks}, nil
}
