// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/atelier-crm/backend/internal/application/usecase/calendar"
	"github.com/atelier-crm/backend/internal/domain/entity"
)

// CalendarItemResponse represents one due-dated item on the calendar.
type CalendarItemResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Kind     string `json:"kind"`
	Status   string `json:"status"`
	Priority string `json:"priority,omitempty"`
}

// DayCellResponse represents one cell of the rendered month grid.
type DayCellResponse struct {
	Day       int  `json:"day"`
	Blank     bool `json:"blank"`
	ItemCount int  `json:"item_count"`
	IsToday   bool `json:"is_today"`
	Clickable bool `json:"clickable"`
}

// CalendarMonthResponse represents the month view: the grid cells plus
// the items aggregated per date key.
type CalendarMonthResponse struct {
	Year      int                               `json:"year"`
	Month     int                               `json:"month"` // 0-based
	MonthName string                            `json:"month_name"`
	Cells     []DayCellResponse                 `json:"cells"`
	Items     map[string][]CalendarItemResponse `json:"items"`
}

// CalendarDateResponse represents the authoritative item list for one date.
type CalendarDateResponse struct {
	DateKey string                 `json:"date_key"`
	Items   []CalendarItemResponse `json:"items"`
	Total   int                    `json:"total"`
}

// ToCalendarItemResponse converts a domain CalendarItem to a response DTO.
func ToCalendarItemResponse(item entity.CalendarItem) CalendarItemResponse {
	return CalendarItemResponse{
		ID:       item.ID,
		Title:    item.Title,
		DueDate:  item.DueDate,
		Kind:     string(item.Kind),
		Status:   item.Status,
		Priority: item.Priority,
	}
}

// ToCalendarMonthResponse assembles the month view response.
func ToCalendarMonthResponse(year, month int, cells []calendar.DayCell, m calendar.DateItemMap) CalendarMonthResponse {
	cellResponses := make([]DayCellResponse, len(cells))
	for i, cell := range cells {
		cellResponses[i] = DayCellResponse{
			Day:       cell.Day,
			Blank:     cell.Blank,
			ItemCount: cell.ItemCount,
			IsToday:   cell.IsToday,
			Clickable: cell.Clickable,
		}
	}

	items := make(map[string][]CalendarItemResponse, len(m))
	for key, dateItems := range m {
		responses := make([]CalendarItemResponse, len(dateItems))
		for i, item := range dateItems {
			responses[i] = ToCalendarItemResponse(item)
		}
		items[key] = responses
	}

	return CalendarMonthResponse{
		Year:      year,
		Month:     month,
		MonthName: calendar.MonthNames[month],
		Cells:     cellResponses,
		Items:     items,
	}
}

// ToCalendarDateResponse assembles the day view response.
func ToCalendarDateResponse(dateKey string, items []entity.CalendarItem) CalendarDateResponse {
	responses := make([]CalendarItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToCalendarItemResponse(item)
	}
	return CalendarDateResponse{
		DateKey: dateKey,
		Items:   responses,
		Total:   len(responses),
	}
}
