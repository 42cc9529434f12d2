// Package order contains order-related use cases.
package order

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

// UpdateOrderInput represents the input for order update. Nil fields are
// left unchanged.
type UpdateOrderInput struct {
	UserID      uuid.UUID
	OrderID     uuid.UUID
	Status      *entity.OrderStatus
	AmountPaid  *decimal.Decimal
	Description *string
	DueDate     *time.Time
}

// UpdateOrderOutput represents the output of order update.
type UpdateOrderOutput struct {
	Order *entity.Order
}

// UpdateOrderUseCase handles order update logic.
type UpdateOrderUseCase struct {
	orderRepo adapter.OrderRepository
	cache     adapter.CalendarCache
}

// NewUpdateOrderUseCase creates a new UpdateOrderUseCase instance.
// The cache may be nil.
func NewUpdateOrderUseCase(orderRepo adapter.OrderRepository, cache adapter.CalendarCache) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo: orderRepo,
		cache:     cache,
	}
}

// Execute performs the order update.
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, input UpdateOrderInput) (*UpdateOrderOutput, error) {
	order, err := uc.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOrderNotFound) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if order.UserID != input.UserID {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeNotAuthorizedOrder,
			"not authorized to modify this order",
			domainerror.ErrNotAuthorizedToModifyOrder,
		)
	}

	previousDue := order.DueDate

	if input.Status != nil {
		if !isValidStatus(*input.Status) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidOrderStatus,
				"status must be 'Pending', 'Completed' or 'Cancelled'",
				domainerror.ErrInvalidOrderStatus,
			)
		}
		order.Status = *input.Status
	}
	if input.AmountPaid != nil {
		order.AmountPaid = *input.AmountPaid
	}
	if input.Description != nil {
		order.Description = *input.Description
	}
	if input.DueDate != nil {
		order.DueDate = input.DueDate
	}
	order.UpdatedAt = time.Now().UTC()

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	// Both the previous and the new due month may have cached grids.
	invalidateDueMonth(ctx, uc.cache, input.UserID, previousDue)
	invalidateDueMonth(ctx, uc.cache, input.UserID, order.DueDate)

	return &UpdateOrderOutput{Order: order}, nil
}
