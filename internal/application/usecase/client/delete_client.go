// Package client contains client-related use cases.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	UserID   uuid.UUID
	ClientID uuid.UUID
}

// DeleteClientUseCase handles client deletion logic.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client deletion.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) error {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return fmt.Errorf("failed to find client: %w", err)
	}

	if client.UserID != input.UserID {
		return domainerror.NewClientError(
			domainerror.ErrCodeNotAuthorizedClient,
			"not authorized to modify this client",
			domainerror.ErrNotAuthorizedToModifyClient,
		)
	}

	if err := uc.clientRepo.Delete(ctx, input.ClientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
