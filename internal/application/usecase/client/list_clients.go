// Package client contains client-related use cases.
package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
)

// ListClientsInput represents the input for listing clients.
type ListClientsInput struct {
	UserID uuid.UUID
}

// ListClientsOutput represents the output of listing clients.
type ListClientsOutput struct {
	Clients []*entity.Client
}

// ListClientsUseCase handles listing clients logic.
type ListClientsUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewListClientsUseCase creates a new ListClientsUseCase instance.
func NewListClientsUseCase(clientRepo adapter.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client listing.
func (uc *ListClientsUseCase) Execute(ctx context.Context, input ListClientsInput) (*ListClientsOutput, error) {
	clients, err := uc.clientRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListClientsOutput{Clients: clients}, nil
}
