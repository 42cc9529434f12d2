// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	PhoneNumber string `json:"phone_number" binding:"required,min=3,max=30"`
	Email       string `json:"email" binding:"omitempty,email"`
}

// UpdateClientRequest represents the request body for client update.
// Omitted fields are left unchanged.
type UpdateClientRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,min=3,max=30"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:          client.ID.String(),
		Name:        client.Name,
		PhoneNumber: client.PhoneNumber,
		Email:       client.Email,
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
}

// ToClientListResponse converts a slice of clients to a list response.
func ToClientListResponse(clients []*entity.Client) ClientListResponse {
	responses := make([]ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = ToClientResponse(client)
	}
	return ClientListResponse{
		Clients: responses,
		Total:   len(responses),
	}
}
