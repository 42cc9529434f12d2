package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// fakeOrderRepo serves canned per-month counts and due windows.
type fakeOrderRepo struct {
	counts map[string]int
	due    []*entity.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error { return nil }

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return nil, domainerror.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.OrderStatus) ([]*entity.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) FindDueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.due {
		if o.DueDate == nil {
			continue
		}
		if !o.DueDate.Before(start) && !o.DueDate.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) CountCreatedPerMonth(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[string]int, error) {
	return r.counts, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error { return nil }

func (r *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// fixedClock returns a constant instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestGetOrderTrendsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	clock := fixedClock{now: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)}

	// Months without orders still appear, with a zero count.
	t.Run("zero-fills empty months", func(t *testing.T) {
		repo := &fakeOrderRepo{counts: map[string]int{
			"2026-04": 3,
			"2026-08": 2,
		}}
		uc := NewGetOrderTrendsUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetOrderTrendsInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(out.Points) != DefaultTrendMonths {
			t.Fatalf("got %d points, want %d", len(out.Points), DefaultTrendMonths)
		}
		if out.Points[0].Month != "2026-03" || out.Points[0].Count != 0 {
			t.Errorf("points[0] = %+v, want 2026-03 with count 0", out.Points[0])
		}
		if out.Points[1].Month != "2026-04" || out.Points[1].Count != 3 {
			t.Errorf("points[1] = %+v, want 2026-04 with count 3", out.Points[1])
		}
		if out.Points[5].Month != "2026-08" || out.Points[5].Count != 2 {
			t.Errorf("points[5] = %+v, want 2026-08 with count 2", out.Points[5])
		}
		if out.Points[5].Label != "Aug 2026" {
			t.Errorf("points[5].Label = %q, want %q", out.Points[5].Label, "Aug 2026")
		}
	})

	// The window ends in the current month even across a year boundary.
	t.Run("window spans year boundary", func(t *testing.T) {
		uc := NewGetOrderTrendsUseCase(&fakeOrderRepo{}, fixedClock{
			now: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		})

		out, err := uc.Execute(context.Background(), GetOrderTrendsInput{UserID: userID, Months: 4})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		want := []string{"2025-11", "2025-12", "2026-01", "2026-02"}
		for i, key := range want {
			if out.Points[i].Month != key {
				t.Errorf("points[%d].Month = %q, want %q", i, out.Points[i].Month, key)
			}
		}
	})

	// Windows outside 1..24 months are rejected.
	t.Run("rejects out-of-range window", func(t *testing.T) {
		uc := NewGetOrderTrendsUseCase(&fakeOrderRepo{}, clock)

		for _, months := range []int{-1, MaxTrendMonths + 1, 99} {
			_, err := uc.Execute(context.Background(), GetOrderTrendsInput{UserID: userID, Months: months})
			var dashErr *domainerror.DashboardError
			if !errors.As(err, &dashErr) {
				t.Fatalf("months=%d: expected DashboardError, got %v", months, err)
			}
			if dashErr.Code != domainerror.ErrCodeInvalidTrendWindow {
				t.Errorf("months=%d: code = %q, want %q", months, dashErr.Code, domainerror.ErrCodeInvalidTrendWindow)
			}
		}
	})
}
