package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// DeleteInventoryItemInput represents the input for inventory item deletion.
type DeleteInventoryItemInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
}

// DeleteInventoryItemUseCase handles inventory item deletion logic.
type DeleteInventoryItemUseCase struct {
	inventoryRepo adapter.InventoryRepository
}

// NewDeleteInventoryItemUseCase creates a new DeleteInventoryItemUseCase instance.
func NewDeleteInventoryItemUseCase(inventoryRepo adapter.InventoryRepository) *DeleteInventoryItemUseCase {
	return &DeleteInventoryItemUseCase{
		inventoryRepo: inventoryRepo,
	}
}

// Execute performs the inventory item deletion.
func (uc *DeleteInventoryItemUseCase) Execute(ctx context.Context, input DeleteInventoryItemInput) error {
	item, err := uc.inventoryRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInventoryItemNotFound) {
			return domainerror.NewInventoryError(
				domainerror.ErrCodeInventoryItemNotFound,
				"inventory item not found",
				domainerror.ErrInventoryItemNotFound,
			)
		}
		return fmt.Errorf("failed to find inventory item: %w", err)
	}

	if item.UserID != input.UserID {
		return domainerror.NewInventoryError(
			domainerror.ErrCodeInventoryItemNotFound,
			"inventory item not found",
			domainerror.ErrInventoryItemNotFound,
		)
	}

	if err := uc.inventoryRepo.Delete(ctx, input.ItemID); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	return nil
}
