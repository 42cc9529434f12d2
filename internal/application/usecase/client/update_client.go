// Package client contains client-related use cases.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// UpdateClientInput represents the input for client update. Nil fields
// are left unchanged.
type UpdateClientInput struct {
	UserID      uuid.UUID
	ClientID    uuid.UUID
	Name        *string
	PhoneNumber *string
	Email       *string
}

// UpdateClientOutput represents the output of client update.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase handles client update logic.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client update.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	if client.UserID != input.UserID {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeNotAuthorizedClient,
			"not authorized to modify this client",
			domainerror.ErrNotAuthorizedToModifyClient,
		)
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.PhoneNumber != nil {
		client.PhoneNumber = *input.PhoneNumber
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{Client: client}, nil
}
