// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	UserID      uuid.UUID
	Name        string
	PhoneNumber string
	Email       string
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.PhoneNumber)
	if name == "" || phone == "" {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeMissingClientFields,
			"name and phone number are required",
			domainerror.ErrMissingClientFields,
		)
	}

	// Phone numbers identify clients within a workspace.
	existing, err := uc.clientRepo.FindByPhoneNumber(ctx, input.UserID, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone number: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientPhoneExists,
			"a client with this phone number already exists",
			domainerror.ErrClientPhoneExists,
		)
	}

	client := entity.NewClient(input.UserID, name, phone, strings.TrimSpace(input.Email))

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{Client: client}, nil
}
