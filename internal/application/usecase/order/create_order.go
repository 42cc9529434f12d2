// Package order contains order-related use cases.
package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// CreateOrderInput represents the input for order creation.
type CreateOrderInput struct {
	UserID         uuid.UUID
	CustomerName   string
	CustomerNumber string
	Status         entity.OrderStatus // Optional, defaults to Pending
	Amount         decimal.Decimal
	AmountPaid     decimal.Decimal
	Description    string
	DueDate        *time.Time
}

// CreateOrderOutput represents the output of order creation.
type CreateOrderOutput struct {
	Order *entity.Order
}

// CreateOrderUseCase handles order creation. The client is resolved by
// the customer's phone number and created on the fly when unknown, so an
// order can be taken for a brand-new customer in one step.
type CreateOrderUseCase struct {
	orderRepo  adapter.OrderRepository
	clientRepo adapter.ClientRepository
	cache      adapter.CalendarCache
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase instance.
// The cache may be nil.
func NewCreateOrderUseCase(orderRepo adapter.OrderRepository, clientRepo adapter.ClientRepository, cache adapter.CalendarCache) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		cache:      cache,
	}
}

// Execute performs the order creation.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	name := strings.TrimSpace(input.CustomerName)
	number := strings.TrimSpace(input.CustomerNumber)
	if name == "" || number == "" {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeMissingOrderFields,
			"customer name and number are required",
			domainerror.ErrMissingOrderFields,
		)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidOrderAmount,
		)
	}

	if input.Status != "" && !isValidStatus(input.Status) {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderStatus,
			"status must be 'Pending', 'Completed' or 'Cancelled'",
			domainerror.ErrInvalidOrderStatus,
		)
	}

	// Resolve or create the client by phone number.
	client, err := uc.clientRepo.FindByPhoneNumber(ctx, input.UserID, number)
	if err != nil {
		return nil, fmt.Errorf("failed to look up client: %w", err)
	}
	if client == nil {
		client = entity.NewClient(input.UserID, name, number, "")
		if err := uc.clientRepo.Create(ctx, client); err != nil {
			return nil, fmt.Errorf("failed to create client: %w", err)
		}
	}

	order := entity.NewOrder(
		input.UserID,
		client.ID,
		name,
		number,
		input.Amount,
		input.AmountPaid,
		input.Description,
		input.DueDate,
	)
	if input.Status != "" {
		order.Status = input.Status
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	invalidateDueMonth(ctx, uc.cache, input.UserID, order.DueDate)

	return &CreateOrderOutput{Order: order}, nil
}

// isValidStatus validates the order status.
func isValidStatus(status entity.OrderStatus) bool {
	return status == entity.OrderStatusPending ||
		status == entity.OrderStatusCompleted ||
		status == entity.OrderStatusCancelled
}

// invalidateDueMonth drops the cached calendar month containing the due
// date, if any.
func invalidateDueMonth(ctx context.Context, cache adapter.CalendarCache, userID uuid.UUID, dueDate *time.Time) {
	if cache == nil || dueDate == nil {
		return
	}
	cache.InvalidateMonth(ctx, userID, dueDate.Year(), int(dueDate.Month())-1)
}
