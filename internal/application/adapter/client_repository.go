// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// ClientRepository defines the interface for client persistence operations.
type ClientRepository interface {
	// Create creates a new client in the database.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindByUser retrieves all clients for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Client, error)

	// FindByPhoneNumber retrieves a client by phone number within a user's
	// workspace. Returns nil, nil when no client matches.
	FindByPhoneNumber(ctx context.Context, userID uuid.UUID, phoneNumber string) (*entity.Client, error)

	// Update updates an existing client in the database.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
