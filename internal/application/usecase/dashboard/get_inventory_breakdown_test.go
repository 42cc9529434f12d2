package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// fakeInventoryRepo serves canned per-type quantity sums.
type fakeInventoryRepo struct {
	totals map[string]int
}

func (r *fakeInventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	return nil
}

func (r *fakeInventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	return nil, domainerror.ErrInventoryItemNotFound
}

func (r *fakeInventoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) ExistsBySKU(ctx context.Context, userID uuid.UUID, sku string) (bool, error) {
	return false, nil
}

func (r *fakeInventoryRepo) SumQuantityByApparelType(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	return r.totals, nil
}

func (r *fakeInventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	return nil
}

func (r *fakeInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func TestGetInventoryBreakdownUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	// Slices come back largest first, ties broken alphabetically.
	t.Run("orders slices by quantity", func(t *testing.T) {
		repo := &fakeInventoryRepo{totals: map[string]int{
			"Fabric":    34,
			"Thread":    5,
			"Accessory": 5,
		}}
		uc := NewGetInventoryBreakdownUseCase(repo)

		out, err := uc.Execute(context.Background(), GetInventoryBreakdownInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		want := []BreakdownSlice{
			{ApparelType: "Fabric", Quantity: 34},
			{ApparelType: "Accessory", Quantity: 5},
			{ApparelType: "Thread", Quantity: 5},
		}
		if len(out.Slices) != len(want) {
			t.Fatalf("got %d slices, want %d", len(out.Slices), len(want))
		}
		for i, w := range want {
			if out.Slices[i] != w {
				t.Errorf("slices[%d] = %+v, want %+v", i, out.Slices[i], w)
			}
		}
		if out.TotalQuantity != 44 {
			t.Errorf("TotalQuantity = %d, want 44", out.TotalQuantity)
		}
	})

	// Items stocked without an apparel type show up under a label.
	t.Run("labels untyped stock", func(t *testing.T) {
		repo := &fakeInventoryRepo{totals: map[string]int{
			"":       7,
			"Fabric": 12,
		}}
		uc := NewGetInventoryBreakdownUseCase(repo)

		out, err := uc.Execute(context.Background(), GetInventoryBreakdownInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Slices[1].ApparelType != UnclassifiedApparelType {
			t.Errorf("slices[1].ApparelType = %q, want %q", out.Slices[1].ApparelType, UnclassifiedApparelType)
		}
	})

	// Empty inventory is not an error.
	t.Run("empty inventory", func(t *testing.T) {
		uc := NewGetInventoryBreakdownUseCase(&fakeInventoryRepo{totals: map[string]int{}})

		out, err := uc.Execute(context.Background(), GetInventoryBreakdownInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(out.Slices) != 0 || out.TotalQuantity != 0 {
			t.Errorf("got %d slices, total %d, want empty", len(out.Slices), out.TotalQuantity)
		}
	})
}
