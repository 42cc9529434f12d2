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

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create creates a new order in the database.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := model.OrderModelFromEntity(order)
	result := r.db.WithContext(ctx).Create(orderModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an order by its ID.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrderNotFound
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// FindByUser retrieves all orders for a user, ordered by due date.
func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var models []model.OrderModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC NULLS LAST").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toOrderEntities(models), nil
}

// FindByUserAndStatus retrieves a user's orders filtered by status.
func (r *orderRepository) FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.OrderStatus) ([]*entity.Order, error) {
	var models []model.OrderModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(status)).
		Order("due_date ASC NULLS LAST").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toOrderEntities(models), nil
}

// FindDueBetween retrieves a user's orders whose due date falls within
// [start, end], ordered by due date.
func (r *orderRepository) FindDueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Order, error) {
	var models []model.OrderModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND due_date >= ? AND due_date <= ?", userID, start, end).
		Order("due_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toOrderEntities(models), nil
}

// CountCreatedPerMonth returns the number of orders created in each month
// between start and end, keyed by "YYYY-MM".
func (r *orderRepository) CountCreatedPerMonth(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[string]int, error) {
	var models []model.OrderModel
	result := r.db.WithContext(ctx).
		Select("created_at").
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	// Bucketing in Go keeps the query portable between postgres and the
	// sqlite test database.
	counts := make(map[string]int, len(models))
	for _, m := range models {
		counts[m.CreatedAt.Format("2006-01")]++
	}
	return counts, nil
}

// Update updates an existing order in the database.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderModel := model.OrderModelFromEntity(order)
	result := r.db.WithContext(ctx).Save(orderModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an order from the database.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toOrderEntities(models []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, len(models))
	for i, m := range models {
		orders[i] = m.ToEntity()
	}
	return orders
}
