// Package calendar contains the calendar view use cases: date-key
// utilities, the due-date aggregator, the month grid renderer and the
// calendar view controller.
package calendar

import (
	"fmt"
	"time"

	"github.com/atelier-crm/backend/internal/application/adapter"
)

// dateKeyLayout is the canonical YYYY-MM-DD form used as the join key
// between due-dated items and grid cells.
const dateKeyLayout = "2006-01-02"

// MonthNames are the full English month names indexed by 0-based month.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DaysInMonth returns the number of days in the given month (0-based),
// correct for leap years. Computed as day 0 of the following month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekdayOfMonth returns the weekday (Sunday=0) of the 1st of the
// given month (0-based).
func FirstWeekdayOfMonth(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local).Weekday())
}

// DateKey renders a canonical zero-padded YYYY-MM-DD key. The month is
// 0-based on input and rendered 1-based. Out-of-range months are the
// caller's responsibility.
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// KeyForTime returns the date key for the calendar day containing t,
// evaluated in t's location.
func KeyForTime(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a canonical YYYY-MM-DD key back into its parts,
// month 0-based.
func ParseDateKey(key string) (year, month, day int, err error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return 0, 0, 0, err
	}
	return t.Year(), int(t.Month()) - 1, t.Day(), nil
}

// TodayKey returns the date key of the clock's current local calendar day.
func TodayKey(clock adapter.Clock) string {
	return KeyForTime(clock.Now())
}

// YesterdayKey returns the date key of the calendar day before today.
func YesterdayKey(clock adapter.Clock) string {
	return KeyForTime(clock.Now().AddDate(0, 0, -1))
}

// WeekRange is the current Sunday-to-Saturday week with a display label.
type WeekRange struct {
	StartDate   string
	EndDate     string
	DisplayText string
}

// CurrentWeekRange computes the week containing the clock's current day.
// The week starts on the most recent Sunday (today, if today is Sunday)
// and ends six days later. The label elides the start month name when
// both ends fall in the same month, e.g. "11th - 17th Jan".
func CurrentWeekRange(clock adapter.Clock) WeekRange {
	now := clock.Now()
	start := now.AddDate(0, 0, -int(now.Weekday()))
	end := start.AddDate(0, 0, 6)

	startLabel := fmt.Sprintf("%d%s", start.Day(), ordinalSuffix(start.Day()))
	endLabel := fmt.Sprintf("%d%s %s", end.Day(), ordinalSuffix(end.Day()), end.Format("Jan"))

	var displayText string
	if start.Month() == end.Month() {
		displayText = startLabel + " - " + endLabel
	} else {
		displayText = startLabel + " " + start.Format("Jan") + " - " + endLabel
	}

	return WeekRange{
		StartDate:   KeyForTime(start),
		EndDate:     KeyForTime(end),
		DisplayText: displayText,
	}
}

// ordinalSuffix returns the English ordinal suffix for a day number.
// 11th-13th are always "th"; otherwise the suffix follows the last digit.
func ordinalSuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
