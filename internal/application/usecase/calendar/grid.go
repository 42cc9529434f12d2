package calendar

import "github.com/atelier-crm/backend/internal/application/adapter"

// DisplayedMonth identifies the month shown by the calendar view.
// Month is 0-based, matching the date-key utilities.
type DisplayedMonth struct {
	Year  int
	Month int
}

// Next returns the month advanced by direction (-1 or +1), handling year
// rollover at January and December.
func (d DisplayedMonth) Next(direction int) DisplayedMonth {
	month := d.Month + direction
	year := d.Year
	for month < 0 {
		month += 12
		year--
	}
	for month > 11 {
		month -= 12
		year++
	}
	return DisplayedMonth{Year: year, Month: month}
}

// DayCell is one cell of the rendered month grid. Blank leading cells
// carry Day 0 and are not clickable.
type DayCell struct {
	Day       int
	Blank     bool
	ItemCount int
	IsToday   bool
	Clickable bool
}

// RenderMonth produces the ordered flat cell sequence for the displayed
// month: FirstWeekdayOfMonth leading blanks, then one cell per day. The
// caller arranges the sequence into a 7-column Sunday-first grid. Pure
// function of its inputs; IsToday is true only when the displayed month
// is the clock's real current month.
func RenderMonth(displayed DisplayedMonth, m DateItemMap, clock adapter.Clock) []DayCell {
	now := clock.Now()
	sameMonth := now.Year() == displayed.Year && int(now.Month())-1 == displayed.Month

	leading := FirstWeekdayOfMonth(displayed.Year, displayed.Month)
	days := DaysInMonth(displayed.Year, displayed.Month)

	cells := make([]DayCell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		count := len(ItemsForDate(m, displayed.Year, displayed.Month, day))
		cells = append(cells, DayCell{
			Day:       day,
			ItemCount: count,
			IsToday:   sameMonth && now.Day() == day,
			Clickable: count > 0,
		})
	}
	return cells
}
