// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	CustomerName   string          `json:"customer_name" binding:"required,min=1,max=255"`
	CustomerNumber string          `json:"customer_number" binding:"required,min=3,max=30"`
	Status         string          `json:"status" binding:"omitempty,oneof=Pending Completed Cancelled"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Description    string          `json:"description"`
	DueDate        *time.Time      `json:"due_date"`
}

// UpdateOrderRequest represents the request body for order update.
// Omitted fields are left unchanged.
type UpdateOrderRequest struct {
	Status      *string          `json:"status" binding:"omitempty,oneof=Pending Completed Cancelled"`
	AmountPaid  *decimal.Decimal `json:"amount_paid"`
	Description *string          `json:"description"`
	DueDate     *time.Time       `json:"due_date"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	CustomerName   string          `json:"customer_name"`
	CustomerNumber string          `json:"customer_number"`
	Status         string          `json:"status"`
	Amount         decimal.Decimal `json:"amount"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	Description    string          `json:"description,omitempty"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderListResponse represents the response for listing orders.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// ToOrderResponse converts a domain Order entity to an OrderResponse DTO.
func ToOrderResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:             order.ID.String(),
		ClientID:       order.ClientID.String(),
		CustomerName:   order.CustomerName,
		CustomerNumber: order.CustomerNumber,
		Status:         string(order.Status),
		Amount:         order.Amount,
		AmountPaid:     order.AmountPaid,
		Outstanding:    order.Outstanding(),
		Description:    order.Description,
		DueDate:        order.DueDate,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

// ToOrderListResponse converts a slice of orders to a list response.
func ToOrderListResponse(orders []*entity.Order) OrderListResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = ToOrderResponse(order)
	}
	return OrderListResponse{
		Orders: responses,
		Total:  len(responses),
	}
}
