package order

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

func TestListOrdersUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	seed := func() *fakeOrderRepo {
		pending := entity.NewOrder(userID, uuid.New(), "Amaka Obi", "+2348012345678", decimal.NewFromInt(5000), decimal.Zero, "gown fitting", nil)
		completed := entity.NewOrder(userID, uuid.New(), "Tunde Ade", "+2348098765432", decimal.NewFromInt(9000), decimal.Zero, "agbada", nil)
		completed.Status = entity.OrderStatusCompleted
		return &fakeOrderRepo{orders: []*entity.Order{pending, completed}}
	}

	// An empty status means no filter at all.
	t.Run("empty status returns every order", func(t *testing.T) {
		uc := NewListOrdersUseCase(seed())

		out, err := uc.Execute(context.Background(), ListOrdersInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(out.Orders) != 2 {
			t.Errorf("got %d orders, want 2", len(out.Orders))
		}
	})

	// A set status narrows the result to matching orders.
	t.Run("filters by status", func(t *testing.T) {
		uc := NewListOrdersUseCase(seed())

		out, err := uc.Execute(context.Background(), ListOrdersInput{
			UserID: userID,
			Status: entity.OrderStatusCompleted,
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(out.Orders) != 1 {
			t.Fatalf("got %d orders, want 1", len(out.Orders))
		}
		if out.Orders[0].Status != entity.OrderStatusCompleted {
			t.Errorf("status = %q, want Completed", out.Orders[0].Status)
		}
	})

	// A status outside the known set is a validation error.
	t.Run("rejects unknown status filter", func(t *testing.T) {
		uc := NewListOrdersUseCase(seed())

		_, err := uc.Execute(context.Background(), ListOrdersInput{
			UserID: userID,
			Status: entity.OrderStatus("Shipped"),
		})
		var orderErr *domainerror.OrderError
		if !errors.As(err, &orderErr) {
			t.Fatalf("expected OrderError, got %v", err)
		}
		if orderErr.Code != domainerror.ErrCodeInvalidOrderStatus {
			t.Errorf("code = %q, want %q", orderErr.Code, domainerror.ErrCodeInvalidOrderStatus)
		}
	})
}
