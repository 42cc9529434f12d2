package calendar

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// GetMonthItemsInput represents the input for the month-level fetch.
type GetMonthItemsInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 0-based
}

// GetMonthItemsOutput represents the assembled month view: the raw items,
// the date-key aggregate and the rendered grid cells.
type GetMonthItemsOutput struct {
	Items []entity.CalendarItem
	Map   DateItemMap
	Cells []DayCell
}

// GetMonthItemsUseCase handles the month-level calendar fetch, backed by
// the month cache when a fresh entry exists.
type GetMonthItemsUseCase struct {
	calendarRepo adapter.CalendarRepository
	cache        adapter.CalendarCache
	clock        adapter.Clock
}

// NewGetMonthItemsUseCase creates a new GetMonthItemsUseCase instance.
// The cache may be nil, in which case every call hits the repository.
func NewGetMonthItemsUseCase(calendarRepo adapter.CalendarRepository, cache adapter.CalendarCache, clock adapter.Clock) *GetMonthItemsUseCase {
	return &GetMonthItemsUseCase{
		calendarRepo: calendarRepo,
		cache:        cache,
		clock:        clock,
	}
}

// Execute performs the month-level fetch and renders the grid.
func (uc *GetMonthItemsUseCase) Execute(ctx context.Context, input GetMonthItemsInput) (*GetMonthItemsOutput, error) {
	if input.Month < 0 || input.Month > 11 {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("month must be between 0 and 11, got %d", input.Month),
			domainerror.ErrInvalidMonth,
		)
	}

	items, cached := uc.cachedMonth(ctx, input)
	if !cached {
		var err error
		items, err = uc.calendarRepo.FindItemsByMonth(ctx, input.UserID, input.Year, input.Month)
		if err != nil {
			return nil, domainerror.NewCalendarError(
				domainerror.ErrCodeMonthFetchFailed,
				"failed to load month items",
				err,
			)
		}
		if uc.cache != nil {
			uc.cache.SetMonth(ctx, input.UserID, input.Year, input.Month, items)
		}
	}

	m := BuildDateItemMap(items)
	displayed := DisplayedMonth{Year: input.Year, Month: input.Month}

	return &GetMonthItemsOutput{
		Items: items,
		Map:   m,
		Cells: RenderMonth(displayed, m, uc.clock),
	}, nil
}

func (uc *GetMonthItemsUseCase) cachedMonth(ctx context.Context, input GetMonthItemsInput) ([]entity.CalendarItem, bool) {
	if uc.cache == nil {
		return nil, false
	}
	return uc.cache.GetMonth(ctx, input.UserID, input.Year, input.Month)
}
