package calendar

import (
	"time"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// DateItemMap maps a date key to the items due on that day, in fetch
// order. Keys exist only for dates with at least one item; an absent key
// means zero items. The map is rebuilt wholesale on every month change,
// never patched in place.
type DateItemMap map[string][]entity.CalendarItem

// dueDateLayouts are the timestamp forms accepted from the service layer,
// tried in order.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateKeyLayout,
}

// parseDueDate parses an item's due date into a local time. Returns
// ok=false for missing or unparseable values.
func parseDueDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t.In(time.Local), true
		}
	}
	return time.Time{}, false
}

// BuildDateItemMap groups items by the local calendar day of their due
// date. Items with missing or unparseable due dates are silently dropped;
// absent data is treated as no items, not as an error.
func BuildDateItemMap(items []entity.CalendarItem) DateItemMap {
	m := make(DateItemMap)
	for _, item := range items {
		due, ok := parseDueDate(item.DueDate)
		if !ok {
			continue
		}
		key := KeyForTime(due)
		m[key] = append(m[key], item)
	}
	return m
}

// ItemsForDate looks up the items for a (year, 0-based month, day) triple.
// Returns an empty slice, never nil, when the date has no items.
func ItemsForDate(m DateItemMap, year, month, day int) []entity.CalendarItem {
	if items, ok := m[DateKey(year, month, day)]; ok {
		return items
	}
	return []entity.CalendarItem{}
}
