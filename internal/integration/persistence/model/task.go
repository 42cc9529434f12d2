// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// TaskModel represents the tasks table in the database.
type TaskModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	TaskName    string     `gorm:"type:varchar(255);not null"`
	DueDate     time.Time  `gorm:"type:timestamp;index;not null"`
	Priority    string     `gorm:"type:varchar(10);not null;default:'Medium'"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Pending'"`
	Description string     `gorm:"type:text"`
	CompletedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

// ToEntity converts a TaskModel to a domain Task entity.
func (m *TaskModel) ToEntity() *entity.Task {
	return &entity.Task{
		ID:          m.ID,
		UserID:      m.UserID,
		TaskName:    m.TaskName,
		DueDate:     m.DueDate,
		Priority:    entity.TaskPriority(m.Priority),
		Status:      entity.TaskStatus(m.Status),
		Description: m.Description,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TaskModelFromEntity creates a TaskModel from a domain Task entity.
func TaskModelFromEntity(task *entity.Task) *TaskModel {
	return &TaskModel{
		ID:          task.ID,
		UserID:      task.UserID,
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
