// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// OrderModel represents the orders table in the database.
type OrderModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	ClientID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	CustomerName   string          `gorm:"type:varchar(255);not null"`
	CustomerNumber string          `gorm:"type:varchar(30);not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:'Pending'"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AmountPaid     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Description    string          `gorm:"type:text"`
	DueDate        *time.Time      `gorm:"type:timestamp;index"`
	CreatedAt      time.Time       `gorm:"not null;index"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts an OrderModel to a domain Order entity.
func (m *OrderModel) ToEntity() *entity.Order {
	return &entity.Order{
		ID:             m.ID,
		UserID:         m.UserID,
		ClientID:       m.ClientID,
		CustomerName:   m.CustomerName,
		CustomerNumber: m.CustomerNumber,
		Status:         entity.OrderStatus(m.Status),
		Amount:         m.Amount,
		AmountPaid:     m.AmountPaid,
		Description:    m.Description,
		DueDate:        m.DueDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// OrderModelFromEntity creates an OrderModel from a domain Order entity.
func OrderModelFromEntity(order *entity.Order) *OrderModel {
	return &OrderModel{
		ID:             order.ID,
		UserID:         order.UserID,
		ClientID:       order.ClientID,
		CustomerName:   order.CustomerName,
		CustomerNumber: order.CustomerNumber,
		Status:         string(order.Status),
		Amount:         order.Amount,
		AmountPaid:     order.AmountPaid,
		Description:    order.Description,
		DueDate:        order.DueDate,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}
