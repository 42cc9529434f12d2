package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
)

// UnclassifiedApparelType labels items stocked without an apparel type.
const UnclassifiedApparelType = "Unclassified"

// GetInventoryBreakdownInput represents the input for the inventory breakdown.
type GetInventoryBreakdownInput struct {
	UserID uuid.UUID
}

// BreakdownSlice is the stocked quantity for one apparel type.
type BreakdownSlice struct {
	ApparelType string `json:"apparel_type"`
	Quantity    int    `json:"quantity"`
}

// GetInventoryBreakdownOutput represents the output of the inventory breakdown.
type GetInventoryBreakdownOutput struct {
	Slices        []BreakdownSlice
	TotalQuantity int
}

// GetInventoryBreakdownUseCase reports total stocked quantity per apparel
// type, largest first.
type GetInventoryBreakdownUseCase struct {
	inventoryRepo adapter.InventoryRepository
}

// NewGetInventoryBreakdownUseCase creates a new GetInventoryBreakdownUseCase instance.
func NewGetInventoryBreakdownUseCase(inventoryRepo adapter.InventoryRepository) *GetInventoryBreakdownUseCase {
	return &GetInventoryBreakdownUseCase{
		inventoryRepo: inventoryRepo,
	}
}

// Execute computes the breakdown for the user's inventory.
func (uc *GetInventoryBreakdownUseCase) Execute(ctx context.Context, input GetInventoryBreakdownInput) (*GetInventoryBreakdownOutput, error) {
	totals, err := uc.inventoryRepo.SumQuantityByApparelType(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum inventory by apparel type: %w", err)
	}

	slices := make([]BreakdownSlice, 0, len(totals))
	total := 0
	for apparelType, quantity := range totals {
		if apparelType == "" {
			apparelType = UnclassifiedApparelType
		}
		slices = append(slices, BreakdownSlice{ApparelType: apparelType, Quantity: quantity})
		total += quantity
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Quantity != slices[j].Quantity {
			return slices[i].Quantity > slices[j].Quantity
		}
		return slices[i].ApparelType < slices[j].ApparelType
	})

	return &GetInventoryBreakdownOutput{
		Slices:        slices,
		TotalQuantity: total,
	}, nil
}
