// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/persistence/model"
)

// clientRepository implements the adapter.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance.
func NewClientRepository(db *gorm.DB) adapter.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// Create creates a new client in the database.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientModelFromEntity(client)
	result := r.db.WithContext(ctx).Create(clientModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a client by its ID.
func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClientNotFound
		}
		return nil, result.Error
	}
	return clientModel.ToEntity(), nil
}

// FindByUser retrieves all clients for a user, newest first.
func (r *clientRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Client, error) {
	var models []model.ClientModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	clients := make([]*entity.Client, len(models))
	for i, m := range models {
		clients[i] = m.ToEntity()
	}
	return clients, nil
}

// FindByPhoneNumber retrieves a user's client by phone number. A miss is
// not an error: it returns (nil, nil) so order creation can decide to
// create the client.
func (r *clientRepository) FindByPhoneNumber(ctx context.Context, userID uuid.UUID, phoneNumber string) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND phone_number = ?", userID, phoneNumber).
		First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return clientModel.ToEntity(), nil
}

// Update updates an existing client in the database.
func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientModelFromEntity(client)
	result := r.db.WithContext(ctx).Save(clientModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a client from the database.
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
