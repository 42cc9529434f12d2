// Package order contains order-related use cases.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// DeleteOrderInput represents the input for order deletion.
type DeleteOrderInput struct {
	UserID  uuid.UUID
	OrderID uuid.UUID
}

// DeleteOrderUseCase handles order deletion logic.
type DeleteOrderUseCase struct {
	orderRepo adapter.OrderRepository
	cache     adapter.CalendarCache
}

// NewDeleteOrderUseCase creates a new DeleteOrderUseCase instance.
// The cache may be nil.
func NewDeleteOrderUseCase(orderRepo adapter.OrderRepository, cache adapter.CalendarCache) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
		cache:     cache,
	}
}

// Execute performs the order deletion.
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, input DeleteOrderInput) error {
	order, err := uc.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOrderNotFound) {
			return domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		return fmt.Errorf("failed to find order: %w", err)
	}

	if order.UserID != input.UserID {
		return domainerror.NewOrderError(
			domainerror.ErrCodeNotAuthorizedOrder,
			"not authorized to modify this order",
			domainerror.ErrNotAuthorizedToModifyOrder,
		)
	}

	if err := uc.orderRepo.Delete(ctx, input.OrderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	invalidateDueMonth(ctx, uc.cache, input.UserID, order.DueDate)
	return nil
}
