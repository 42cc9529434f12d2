// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/persistence/model"
)

// inventoryRepository implements the adapter.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository instance.
func NewInventoryRepository(db *gorm.DB) adapter.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// Create creates a new inventory item in the database.
func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	itemModel := model.InventoryModelFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an inventory item by its ID.
func (r *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var itemModel model.InventoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInventoryItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindByUser retrieves all inventory items for a user, ordered by name.
func (r *inventoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error) {
	var models []model.InventoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("inventory_name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.InventoryItem, len(models))
	for i, m := range models {
		items[i] = m.ToEntity()
	}
	return items, nil
}

// ExistsBySKU checks if an item with the given SKU exists for the user.
func (r *inventoryRepository) ExistsBySKU(ctx context.Context, userID uuid.UUID, sku string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("user_id = ? AND sku = ?", userID, sku).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SumQuantityByApparelType returns total stocked quantity per apparel type.
func (r *inventoryRepository) SumQuantityByApparelType(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	type row struct {
		ApparelType string
		Total       int
	}

	var rows []row
	result := r.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Select("apparel_type, SUM(quantity) as total").
		Where("user_id = ?", userID).
		Group("apparel_type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make(map[string]int, len(rows))
	for _, r := range rows {
		totals[r.ApparelType] = r.Total
	}
	return totals, nil
}

// Update updates an existing inventory item in the database.
func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	itemModel := model.InventoryModelFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an inventory item from the database.
func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InventoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
