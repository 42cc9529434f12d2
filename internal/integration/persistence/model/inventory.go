// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// InventoryModel represents the inventory table in the database.
type InventoryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index:idx_inventory_user_sku,unique;not null"`
	InventoryName string          `gorm:"type:varchar(255);not null"`
	SKU           string          `gorm:"type:varchar(100);index:idx_inventory_user_sku,unique;not null"`
	Quantity      int             `gorm:"not null;default:0"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ApparelType   string          `gorm:"type:varchar(100);index"`
	ReorderLevel  int             `gorm:"not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InventoryModel.
func (InventoryModel) TableName() string {
	return "inventory"
}

// ToEntity converts an InventoryModel to a domain InventoryItem entity.
func (m *InventoryModel) ToEntity() *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:            m.ID,
		UserID:        m.UserID,
		InventoryName: m.InventoryName,
		SKU:           m.SKU,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		ApparelType:   m.ApparelType,
		ReorderLevel:  m.ReorderLevel,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// InventoryModelFromEntity creates an InventoryModel from a domain InventoryItem entity.
func InventoryModelFromEntity(item *entity.InventoryItem) *InventoryModel {
	return &InventoryModel{
		ID:            item.ID,
		UserID:        item.UserID,
		InventoryName: item.InventoryName,
		SKU:           item.SKU,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		ApparelType:   item.ApparelType,
		ReorderLevel:  item.ReorderLevel,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
