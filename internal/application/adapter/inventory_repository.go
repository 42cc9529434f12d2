// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// InventoryRepository defines the interface for inventory persistence operations.
type InventoryRepository interface {
	// Create creates a new inventory item in the database.
	Create(ctx context.Context, item *entity.InventoryItem) error

	// FindByID retrieves an inventory item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)

	// FindByUser retrieves all inventory items for a user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error)

	// ExistsBySKU checks if an item with the given SKU exists for the user.
	ExistsBySKU(ctx context.Context, userID uuid.UUID, sku string) (bool, error)

	// SumQuantityByApparelType returns total stocked quantity per apparel type.
	SumQuantityByApparelType(ctx context.Context, userID uuid.UUID) (map[string]int, error)

	// Update updates an existing inventory item in the database.
	Update(ctx context.Context, item *entity.InventoryItem) error

	// Delete removes an inventory item from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
