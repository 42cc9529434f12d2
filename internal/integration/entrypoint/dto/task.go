// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	TaskName    string    `json:"task_name" binding:"required,min=1,max=255"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Description string    `json:"description"`
}

// UpdateTaskRequest represents the request body for task update.
// Omitted fields are left unchanged.
type UpdateTaskRequest struct {
	TaskName    *string    `json:"task_name" binding:"omitempty,min=1,max=255"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Pending 'In Progress' Completed"`
	Description *string    `json:"description"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string     `json:"id"`
	TaskName    string     `json:"task_name"`
	DueDate     time.Time  `json:"due_date"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(task *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		TaskName:    task.TaskName,
		DueDate:     task.DueDate,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		Description: task.Description,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskListResponse converts a slice of tasks to a list response.
func ToTaskListResponse(tasks []*entity.Task) TaskListResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return TaskListResponse{
		Tasks: responses,
		Total: len(responses),
	}
}
