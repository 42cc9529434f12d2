// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/persistence/model"
)

// taskRepository implements the adapter.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(db *gorm.DB) adapter.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create creates a new task in the database.
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskModelFromEntity(task)
	result := r.db.WithContext(ctx).Create(taskModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskModel model.TaskModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&taskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaskNotFound
		}
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// FindByUser retrieves all tasks for a user, ordered by due date.
func (r *taskRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	var models []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTaskEntities(models), nil
}

// FindByUserAndStatus retrieves a user's tasks filtered by status.
func (r *taskRepository) FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.TaskStatus) ([]*entity.Task, error) {
	var models []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(status)).
		Order("due_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTaskEntities(models), nil
}

// FindDueBetween retrieves a user's tasks whose due date falls within
// [start, end], ordered by due date.
func (r *taskRepository) FindDueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Task, error) {
	var models []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND due_date >= ? AND due_date <= ?", userID, start, end).
		Order("due_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTaskEntities(models), nil
}

// Update updates an existing task in the database.
func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskModelFromEntity(task)
	result := r.db.WithContext(ctx).Save(taskModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a task from the database.
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toTaskEntities(models []model.TaskModel) []*entity.Task {
	tasks := make([]*entity.Task, len(models))
	for i, m := range models {
		tasks[i] = m.ToEntity()
	}
	return tasks
}
