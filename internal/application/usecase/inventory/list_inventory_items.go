package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
)

// ListInventoryItemsInput represents the input for listing inventory items.
type ListInventoryItemsInput struct {
	UserID uuid.UUID
}

// ListInventoryItemsOutput represents the output of listing inventory items.
type ListInventoryItemsOutput struct {
	Items []*entity.InventoryItem
}

// ListInventoryItemsUseCase handles listing a user's inventory.
type ListInventoryItemsUseCase struct {
	inventoryRepo adapter.InventoryRepository
}

// NewListInventoryItemsUseCase creates a new ListInventoryItemsUseCase instance.
func NewListInventoryItemsUseCase(inventoryRepo adapter.InventoryRepository) *ListInventoryItemsUseCase {
	return &ListInventoryItemsUseCase{
		inventoryRepo: inventoryRepo,
	}
}

// Execute retrieves all inventory items belonging to the user.
func (uc *ListInventoryItemsUseCase) Execute(ctx context.Context, input ListInventoryItemsInput) (*ListInventoryItemsOutput, error) {
	items, err := uc.inventoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	return &ListInventoryItemsOutput{Items: items}, nil
}
