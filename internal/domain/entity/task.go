// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the progress status of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// TaskPriority represents the priority of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// Task represents a work item with a deadline.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TaskName    string
	DueDate     time.Time
	Priority    TaskPriority
	Status      TaskStatus
	Description string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a new Task entity with default status Pending.
func NewTask(userID uuid.UUID, taskName string, dueDate time.Time, priority TaskPriority, description string) *Task {
	now := time.Now().UTC()

	return &Task{
		ID:          uuid.New(),
		UserID:      userID,
		TaskName:    taskName,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      TaskStatusPending,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Complete marks the task as completed at the given instant.
func (t *Task) Complete(at time.Time) {
	t.Status = TaskStatusCompleted
	t.CompletedAt = &at
	t.UpdatedAt = at
}
