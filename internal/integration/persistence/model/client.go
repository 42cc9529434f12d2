// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// ClientModel represents the clients table in the database.
type ClientModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index:idx_clients_user_phone,unique;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	PhoneNumber string    `gorm:"type:varchar(30);index:idx_clients_user_phone,unique;not null"`
	Email       string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity.
func (m *ClientModel) ToEntity() *entity.Client {
	return &entity.Client{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		Email:       m.Email,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ClientModelFromEntity creates a ClientModel from a domain Client entity.
func ClientModelFromEntity(client *entity.Client) *ClientModel {
	return &ClientModel{
		ID:          client.ID,
		UserID:      client.UserID,
		Name:        client.Name,
		PhoneNumber: client.PhoneNumber,
		Email:       client.Email,
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
}
