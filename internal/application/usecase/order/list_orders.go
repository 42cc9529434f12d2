// Package order contains order-related use cases.
package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// ListOrdersInput represents the input for listing orders.
type ListOrdersInput struct {
	UserID uuid.UUID
	Status entity.OrderStatus // Optional status filter
}

// ListOrdersOutput represents the output of listing orders.
type ListOrdersOutput struct {
	Orders []*entity.Order
}

// ListOrdersUseCase handles listing orders logic.
type ListOrdersUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewListOrdersUseCase creates a new ListOrdersUseCase instance.
func NewListOrdersUseCase(orderRepo adapter.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the order listing.
func (uc *ListOrdersUseCase) Execute(ctx context.Context, input ListOrdersInput) (*ListOrdersOutput, error) {
	if input.Status != "" && !isValidStatus(input.Status) {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderStatus,
			"status must be 'Pending', 'Completed' or 'Cancelled'",
			domainerror.ErrInvalidOrderStatus,
		)
	}

	var orders []*entity.Order
	var err error
	if input.Status != "" {
		orders, err = uc.orderRepo.FindByUserAndStatus(ctx, input.UserID, input.Status)
	} else {
		orders, err = uc.orderRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	return &ListOrdersOutput{Orders: orders}, nil
}
