package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// UpdateInventoryItemInput represents the input for inventory item update.
// Nil fields are left unchanged.
type UpdateInventoryItemInput struct {
	UserID        uuid.UUID
	ItemID        uuid.UUID
	InventoryName *string
	Quantity      *int
	UnitPrice     *decimal.Decimal
	ApparelType   *string
	ReorderLevel  *int
}

// UpdateInventoryItemOutput represents the output of inventory item update.
type UpdateInventoryItemOutput struct {
	Item *entity.InventoryItem
}

// UpdateInventoryItemUseCase handles inventory item update logic.
type UpdateInventoryItemUseCase struct {
	inventoryRepo adapter.InventoryRepository
}

// NewUpdateInventoryItemUseCase creates a new UpdateInventoryItemUseCase instance.
func NewUpdateInventoryItemUseCase(inventoryRepo adapter.InventoryRepository) *UpdateInventoryItemUseCase {
	return &UpdateInventoryItemUseCase{
		inventoryRepo: inventoryRepo,
	}
}

// Execute performs the inventory item update.
func (uc *UpdateInventoryItemUseCase) Execute(ctx context.Context, input UpdateInventoryItemInput) (*UpdateInventoryItemOutput, error) {
	item, err := uc.inventoryRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInventoryItemNotFound) {
			return nil, domainerror.NewInventoryError(
				domainerror.ErrCodeInventoryItemNotFound,
				"inventory item not found",
				domainerror.ErrInventoryItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	if item.UserID != input.UserID {
		return nil, domainerror.NewInventoryError(
			domainerror.ErrCodeInventoryItemNotFound,
			"inventory item not found",
			domainerror.ErrInventoryItemNotFound,
		)
	}

	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, domainerror.NewInventoryError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must not be negative",
			domainerror.ErrInvalidQuantity,
		)
	}

	if input.InventoryName != nil {
		item.InventoryName = *input.InventoryName
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		item.UnitPrice = *input.UnitPrice
	}
	if input.ApparelType != nil {
		item.ApparelType = *input.ApparelType
	}
	if input.ReorderLevel != nil {
		item.ReorderLevel = *input.ReorderLevel
	}
	item.UpdatedAt = time.Now().UTC()

	if err := uc.inventoryRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	return &UpdateInventoryItemOutput{Item: item}, nil
}
