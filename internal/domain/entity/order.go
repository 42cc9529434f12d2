// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment status of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order represents a customer order in the Atelier CRM system.
type Order struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ClientID       uuid.UUID
	CustomerName   string
	CustomerNumber string
	Status         OrderStatus
	Amount         decimal.Decimal
	AmountPaid     decimal.Decimal
	Description    string
	DueDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewOrder creates a new Order entity with default status Pending.
func NewOrder(
	userID uuid.UUID,
	clientID uuid.UUID,
	customerName string,
	customerNumber string,
	amount decimal.Decimal,
	amountPaid decimal.Decimal,
	description string,
	dueDate *time.Time,
) *Order {
	now := time.Now().UTC()

	return &Order{
		ID:             uuid.New(),
		UserID:         userID,
		ClientID:       clientID,
		CustomerName:   customerName,
		CustomerNumber: customerNumber,
		Status:         OrderStatusPending,
		Amount:         amount,
		AmountPaid:     amountPaid,
		Description:    description,
		DueDate:        dueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Outstanding returns the amount still owed on the order.
func (o *Order) Outstanding() decimal.Decimal {
	return o.Amount.Sub(o.AmountPaid)
}
