package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// fakeInventoryRepo keeps items in memory and tracks known SKUs.
type fakeInventoryRepo struct {
	items map[uuid.UUID]*entity.InventoryItem
	skus  map[string]bool
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{
		items: make(map[uuid.UUID]*entity.InventoryItem),
		skus:  make(map[string]bool),
	}
}

func (r *fakeInventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	r.items[item.ID] = item
	r.skus[item.SKU] = true
	return nil
}

func (r *fakeInventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrInventoryItemNotFound
	}
	return item, nil
}

func (r *fakeInventoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) ExistsBySKU(ctx context.Context, userID uuid.UUID, sku string) (bool, error) {
	return r.skus[sku], nil
}

func (r *fakeInventoryRepo) SumQuantityByApparelType(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func TestCreateInventoryItemUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	// Happy path, with trimmed fields.
	t.Run("creates item", func(t *testing.T) {
		repo := newFakeInventoryRepo()
		uc := NewCreateInventoryItemUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateInventoryItemInput{
			UserID:        userID,
			InventoryName: "  Ankara fabric ",
			SKU:           " FAB-001 ",
			Quantity:      24,
			UnitPrice:     decimal.NewFromInt(3500),
			ApparelType:   "Fabric",
			ReorderLevel:  5,
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Item.InventoryName != "Ankara fabric" {
			t.Errorf("InventoryName = %q, want trimmed", out.Item.InventoryName)
		}
		if out.Item.SKU != "FAB-001" {
			t.Errorf("SKU = %q, want trimmed", out.Item.SKU)
		}
		if out.Item.NeedsReorder() {
			t.Error("NeedsReorder = true, want false at quantity 24 / reorder 5")
		}
	})

	// Stock at or below the reorder level flags a reorder.
	t.Run("flags low stock", func(t *testing.T) {
		repo := newFakeInventoryRepo()
		uc := NewCreateInventoryItemUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateInventoryItemInput{
			UserID:        userID,
			InventoryName: "Silk thread",
			SKU:           "THR-002",
			Quantity:      2,
			UnitPrice:     decimal.NewFromInt(500),
			ReorderLevel:  5,
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if !out.Item.NeedsReorder() {
			t.Error("NeedsReorder = false, want true at quantity 2 / reorder 5")
		}
	})

	// SKUs are unique per user.
	t.Run("rejects duplicate sku", func(t *testing.T) {
		repo := newFakeInventoryRepo()
		repo.skus["FAB-001"] = true
		uc := NewCreateInventoryItemUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateInventoryItemInput{
			UserID:        userID,
			InventoryName: "Ankara fabric",
			SKU:           "FAB-001",
			Quantity:      10,
			UnitPrice:     decimal.NewFromInt(3500),
		})
		var invErr *domainerror.InventoryError
		if !errors.As(err, &invErr) {
			t.Fatalf("expected InventoryError, got %v", err)
		}
		if invErr.Code != domainerror.ErrCodeSKUExists {
			t.Errorf("code = %q, want %q", invErr.Code, domainerror.ErrCodeSKUExists)
		}
	})

	// Negative stock is rejected outright.
	t.Run("rejects negative quantity", func(t *testing.T) {
		uc := NewCreateInventoryItemUseCase(newFakeInventoryRepo())

		_, err := uc.Execute(context.Background(), CreateInventoryItemInput{
			UserID:        userID,
			InventoryName: "Ankara fabric",
			SKU:           "FAB-001",
			Quantity:      -1,
		})
		var invErr *domainerror.InventoryError
		if !errors.As(err, &invErr) {
			t.Fatalf("expected InventoryError, got %v", err)
		}
		if invErr.Code != domainerror.ErrCodeInvalidQuantity {
			t.Errorf("code = %q, want %q", invErr.Code, domainerror.ErrCodeInvalidQuantity)
		}
	})
}
