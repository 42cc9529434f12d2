package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// fakeTaskRepo serves tasks by due window.
type fakeTaskRepo struct {
	tasks []*entity.Task
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entity.Task) error { return nil }

func (r *fakeTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	return nil, domainerror.ErrTaskNotFound
}

func (r *fakeTaskRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	return nil, nil
}

func (r *fakeTaskRepo) FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.TaskStatus) ([]*entity.Task, error) {
	return nil, nil
}

func (r *fakeTaskRepo) FindDueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, tk := range r.tasks {
		if !tk.DueDate.Before(start) && !tk.DueDate.After(end) {
			out = append(out, tk)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *entity.Task) error { return nil }

func (r *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func TestGetOverviewUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	// Saturday, so the Sunday-based week runs Aug 9 through Aug 15.
	clock := fixedClock{now: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)}

	dueOrder := func(due time.Time) *entity.Order {
		return entity.NewOrder(userID, uuid.New(), "Amaka Obi", "+2348012345678",
			decimal.NewFromInt(45000), decimal.Zero, "", &due)
	}
	dueTask := func(due time.Time) *entity.Task {
		return entity.NewTask(userID, "Fit saree blouse", due, entity.TaskPriorityMedium, "")
	}

	// Items land in today, yesterday and this-week buckets by due date.
	t.Run("buckets due items", func(t *testing.T) {
		orderRepo := &fakeOrderRepo{due: []*entity.Order{
			dueOrder(time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)),
		}}
		taskRepo := &fakeTaskRepo{tasks: []*entity.Task{
			dueTask(time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetOverviewUseCase(orderRepo, taskRepo, clock)

		out, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Today.Count() != 1 {
			t.Errorf("Today.Count = %d, want 1", out.Today.Count())
		}
		if out.Yesterday.Count() != 1 {
			t.Errorf("Yesterday.Count = %d, want 1", out.Yesterday.Count())
		}
		if out.ThisWeek.Count() != 2 {
			t.Errorf("ThisWeek.Count = %d, want 2", out.ThisWeek.Count())
		}
	})

	// Items due outside the week stay out of every bucket.
	t.Run("excludes items outside the week", func(t *testing.T) {
		orderRepo := &fakeOrderRepo{due: []*entity.Order{
			dueOrder(time.Date(2026, 8, 22, 9, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetOverviewUseCase(orderRepo, &fakeTaskRepo{}, clock)

		out, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Today.Count() != 0 || out.Yesterday.Count() != 0 || out.ThisWeek.Count() != 0 {
			t.Errorf("counts = %d/%d/%d, want 0/0/0",
				out.Today.Count(), out.Yesterday.Count(), out.ThisWeek.Count())
		}
	})

	// The week label matches the Sunday-to-Saturday range.
	t.Run("week display label", func(t *testing.T) {
		uc := NewGetOverviewUseCase(&fakeOrderRepo{}, &fakeTaskRepo{}, clock)

		out, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.WeekDisplay != "9th - 15th Aug" {
			t.Errorf("WeekDisplay = %q, want %q", out.WeekDisplay, "9th - 15th Aug")
		}
	})
}
