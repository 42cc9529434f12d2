// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// CreateInventoryItemRequest represents the request body for inventory item creation.
type CreateInventoryItemRequest struct {
	InventoryName string          `json:"inventory_name" binding:"required,min=1,max=255"`
	SKU           string          `json:"sku" binding:"required,min=1,max=100"`
	Quantity      int             `json:"quantity" binding:"min=0"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ApparelType   string          `json:"apparel_type" binding:"max=100"`
	ReorderLevel  int             `json:"reorder_level" binding:"min=0"`
}

// UpdateInventoryItemRequest represents the request body for inventory item update.
// Omitted fields are left unchanged.
type UpdateInventoryItemRequest struct {
	InventoryName *string          `json:"inventory_name" binding:"omitempty,min=1,max=255"`
	Quantity      *int             `json:"quantity" binding:"omitempty,min=0"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	ApparelType   *string          `json:"apparel_type" binding:"omitempty,max=100"`
	ReorderLevel  *int             `json:"reorder_level" binding:"omitempty,min=0"`
}

// InventoryItemResponse represents an inventory item in API responses.
type InventoryItemResponse struct {
	ID            string          `json:"id"`
	InventoryName string          `json:"inventory_name"`
	SKU           string          `json:"sku"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ApparelType   string          `json:"apparel_type,omitempty"`
	ReorderLevel  int             `json:"reorder_level"`
	NeedsReorder  bool            `json:"needs_reorder"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InventoryListResponse represents the response for listing inventory items.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Total int                     `json:"total"`
}

// ToInventoryItemResponse converts a domain InventoryItem entity to a response DTO.
func ToInventoryItemResponse(item *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:            item.ID.String(),
		InventoryName: item.InventoryName,
		SKU:           item.SKU,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		ApparelType:   item.ApparelType,
		ReorderLevel:  item.ReorderLevel,
		NeedsReorder:  item.NeedsReorder(),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// ToInventoryListResponse converts a slice of inventory items to a list response.
func ToInventoryListResponse(items []*entity.InventoryItem) InventoryListResponse {
	responses := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToInventoryItemResponse(item)
	}
	return InventoryListResponse{
		Items: responses,
		Total: len(responses),
	}
}
