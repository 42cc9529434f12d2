// Package inventory contains inventory-related use cases.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// CreateInventoryItemInput represents the input for inventory item creation.
type CreateInventoryItemInput struct {
	UserID        uuid.UUID
	InventoryName string
	SKU           string
	Quantity      int
	UnitPrice     decimal.Decimal
	ApparelType   string
	ReorderLevel  int
}

// CreateInventoryItemOutput represents the output of inventory item creation.
type CreateInventoryItemOutput struct {
	Item *entity.InventoryItem
}

// CreateInventoryItemUseCase handles inventory item creation logic.
type CreateInventoryItemUseCase struct {
	inventoryRepo adapter.InventoryRepository
}

// NewCreateInventoryItemUseCase creates a new CreateInventoryItemUseCase instance.
func NewCreateInventoryItemUseCase(inventoryRepo adapter.InventoryRepository) *CreateInventoryItemUseCase {
	return &CreateInventoryItemUseCase{
		inventoryRepo: inventoryRepo,
	}
}

// Execute performs the inventory item creation.
func (uc *CreateInventoryItemUseCase) Execute(ctx context.Context, input CreateInventoryItemInput) (*CreateInventoryItemOutput, error) {
	name := strings.TrimSpace(input.InventoryName)
	sku := strings.TrimSpace(input.SKU)
	if name == "" || sku == "" {
		return nil, domainerror.NewInventoryError(
			domainerror.ErrCodeMissingInventoryFields,
			"inventory name and sku are required",
			domainerror.ErrMissingInventoryFields,
		)
	}

	if input.Quantity < 0 {
		return nil, domainerror.NewInventoryError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must not be negative",
			domainerror.ErrInvalidQuantity,
		)
	}

	exists, err := uc.inventoryRepo.ExistsBySKU(ctx, input.UserID, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to check sku existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewInventoryError(
			domainerror.ErrCodeSKUExists,
			"an item with this sku already exists",
			domainerror.ErrSKUExists,
		)
	}

	item := entity.NewInventoryItem(
		input.UserID,
		name,
		sku,
		input.Quantity,
		input.UnitPrice,
		strings.TrimSpace(input.ApparelType),
		input.ReorderLevel,
	)

	if err := uc.inventoryRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	return &CreateInventoryItemOutput{Item: item}, nil
}
