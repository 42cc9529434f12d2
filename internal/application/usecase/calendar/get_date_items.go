package calendar

import (
	"context"

	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// GetDateItemsInput represents the input for the day-level fetch.
type GetDateItemsInput struct {
	UserID  uuid.UUID
	DateKey string
}

// GetDateItemsOutput represents the authoritative item list for one date.
type GetDateItemsOutput struct {
	Items []entity.CalendarItem
}

// GetDateItemsUseCase handles the day-level calendar fetch backing the
// detail panel.
type GetDateItemsUseCase struct {
	calendarRepo adapter.CalendarRepository
}

// NewGetDateItemsUseCase creates a new GetDateItemsUseCase instance.
func NewGetDateItemsUseCase(calendarRepo adapter.CalendarRepository) *GetDateItemsUseCase {
	return &GetDateItemsUseCase{
		calendarRepo: calendarRepo,
	}
}

// Execute performs the day-level fetch.
func (uc *GetDateItemsUseCase) Execute(ctx context.Context, input GetDateItemsInput) (*GetDateItemsOutput, error) {
	if _, _, _, err := ParseDateKey(input.DateKey); err != nil {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidDateKey,
			"date must be a YYYY-MM-DD key",
			domainerror.ErrInvalidDateKey,
		)
	}

	items, err := uc.calendarRepo.FindItemsByDate(ctx, input.UserID, input.DateKey)
	if err != nil {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeDateFetchFailed,
			"failed to load items for date",
			err,
		)
	}

	if items == nil {
		items = []entity.CalendarItem{}
	}
	return &GetDateItemsOutput{Items: items}, nil
}
