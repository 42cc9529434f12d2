// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a customer of the fashion business.
// Clients are identified by phone number within a user's workspace; order
// creation resolves or creates the client from the customer's number.
type Client struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	PhoneNumber string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewClient creates a new Client entity.
func NewClient(userID uuid.UUID, name, phoneNumber, email string) *Client {
	now := time.Now().UTC()
	return &Client{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		PhoneNumber: phoneNumber,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
