// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem represents a stocked item (fabric, garment, accessory).
type InventoryItem struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	InventoryName string
	SKU           string
	Quantity      int
	UnitPrice     decimal.Decimal
	ApparelType   string
	ReorderLevel  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInventoryItem creates a new InventoryItem entity.
func NewInventoryItem(
	userID uuid.UUID,
	inventoryName string,
	sku string,
	quantity int,
	unitPrice decimal.Decimal,
	apparelType string,
	reorderLevel int,
) *InventoryItem {
	now := time.Now().UTC()

	return &InventoryItem{
		ID:            uuid.New(),
		UserID:        userID,
		InventoryName: inventoryName,
		SKU:           sku,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		ApparelType:   apparelType,
		ReorderLevel:  reorderLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NeedsReorder returns true when the stocked quantity is at or below the
// configured reorder level.
func (i *InventoryItem) NeedsReorder() bool {
	return i.ReorderLevel > 0 && i.Quantity <= i.ReorderLevel
}
