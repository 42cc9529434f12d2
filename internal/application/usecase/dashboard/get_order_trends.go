package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// DefaultTrendMonths is the trailing window used when none is requested.
const DefaultTrendMonths = 6

// MaxTrendMonths caps the trailing window.
const MaxTrendMonths = 24

// GetOrderTrendsInput represents the input for order creation trends.
type GetOrderTrendsInput struct {
	UserID uuid.UUID
	Months int // Optional, defaults to DefaultTrendMonths
}

// TrendPoint is the order count for one calendar month.
type TrendPoint struct {
	Month string `json:"month"` // "YYYY-MM"
	Label string `json:"label"` // e.g. "Jan 2026"
	Count int    `json:"count"`
}

// GetOrderTrendsOutput represents the output of order creation trends.
type GetOrderTrendsOutput struct {
	Points []TrendPoint
}

// GetOrderTrendsUseCase reports orders created per month over a trailing
// window. Months with no orders are emitted with a zero count so charts
// render without gaps.
type GetOrderTrendsUseCase struct {
	orderRepo adapter.OrderRepository
	clock     adapter.Clock
}

// NewGetOrderTrendsUseCase creates a new GetOrderTrendsUseCase instance.
func NewGetOrderTrendsUseCase(orderRepo adapter.OrderRepository, clock adapter.Clock) *GetOrderTrendsUseCase {
	return &GetOrderTrendsUseCase{
		orderRepo: orderRepo,
		clock:     clock,
	}
}

// Execute computes the per-month order counts.
func (uc *GetOrderTrendsUseCase) Execute(ctx context.Context, input GetOrderTrendsInput) (*GetOrderTrendsOutput, error) {
	months := input.Months
	if months == 0 {
		months = DefaultTrendMonths
	}
	if months < 1 || months > MaxTrendMonths {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTrendWindow,
			fmt.Sprintf("months must be between 1 and %d", MaxTrendMonths),
			domainerror.ErrInvalidTrendWindow,
		)
	}

	now := uc.clock.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)

	counts, err := uc.orderRepo.CountCreatedPerMonth(ctx, input.UserID, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders per month: %w", err)
	}

	points := make([]TrendPoint, 0, months)
	for i := 0; i < months; i++ {
		m := windowStart.AddDate(0, i, 0)
		key := m.Format("2006-01")
		points = append(points, TrendPoint{
			Month: key,
			Label: m.Format("Jan 2006"),
			Count: counts[key],
		})
	}

	return &GetOrderTrendsOutput{Points: points}, nil
}
