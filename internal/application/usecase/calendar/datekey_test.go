package calendar

import (
	"testing"
	"time"
)

// fixedClock returns a constant instant, letting tests pin "today".
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"January 2026", 2026, 0, 31},
		{"February 2024 leap year", 2024, 1, 29},
		{"February 2025", 2025, 1, 28},
		{"February 2026", 2026, 1, 28},
		{"February 2028 leap year", 2028, 1, 29},
		{"April 2026", 2026, 3, 30},
		{"December 2026", 2026, 11, 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysInMonth(tc.year, tc.month); got != tc.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
			}
		})
	}
}

func TestFirstWeekdayOfMonth(t *testing.T) {
	// January 1st 2026 is a Thursday.
	if got := FirstWeekdayOfMonth(2026, 0); got != 4 {
		t.Errorf("FirstWeekdayOfMonth(2026, 0) = %d, want 4", got)
	}
	// February 1st 2026 is a Sunday.
	if got := FirstWeekdayOfMonth(2026, 1); got != 0 {
		t.Errorf("FirstWeekdayOfMonth(2026, 1) = %d, want 0", got)
	}
}

func TestDateKey(t *testing.T) {
	t.Run("zero-pads month and day", func(t *testing.T) {
		if got := DateKey(2026, 0, 5); got != "2026-01-05" {
			t.Errorf("DateKey(2026, 0, 5) = %q, want %q", got, "2026-01-05")
		}
	})

	t.Run("month is 0-based in, 1-based out", func(t *testing.T) {
		if got := DateKey(2026, 11, 31); got != "2026-12-31" {
			t.Errorf("DateKey(2026, 11, 31) = %q, want %q", got, "2026-12-31")
		}
	})
}

func TestParseDateKey(t *testing.T) {
	year, month, day, err := ParseDateKey("2026-01-05")
	if err != nil {
		t.Fatalf("ParseDateKey returned error: %v", err)
	}
	if year != 2026 || month != 0 || day != 5 {
		t.Errorf("ParseDateKey = (%d, %d, %d), want (2026, 0, 5)", year, month, day)
	}

	if _, _, _, err := ParseDateKey("not-a-date"); err == nil {
		t.Error("expected error for malformed date key")
	}
}

func TestTodayAndYesterdayKeys(t *testing.T) {
	clock := fixedClock{now: time.Date(2026, time.March, 1, 10, 30, 0, 0, time.Local)}

	if got := TodayKey(clock); got != "2026-03-01" {
		t.Errorf("TodayKey = %q, want %q", got, "2026-03-01")
	}
	// Yesterday crosses the month boundary.
	if got := YesterdayKey(clock); got != "2026-02-28" {
		t.Errorf("YesterdayKey = %q, want %q", got, "2026-02-28")
	}
}

func TestCurrentWeekRange(t *testing.T) {
	t.Run("Wednesday resolves to the preceding Sunday", func(t *testing.T) {
		// Wednesday 14 January 2026; week is Sunday the 11th to Saturday the 17th.
		clock := fixedClock{now: time.Date(2026, time.January, 14, 9, 0, 0, 0, time.Local)}

		r := CurrentWeekRange(clock)
		if r.StartDate != "2026-01-11" {
			t.Errorf("StartDate = %q, want %q", r.StartDate, "2026-01-11")
		}
		if r.EndDate != "2026-01-17" {
			t.Errorf("EndDate = %q, want %q", r.EndDate, "2026-01-17")
		}
		if r.DisplayText != "11th - 17th Jan" {
			t.Errorf("DisplayText = %q, want %q", r.DisplayText, "11th - 17th Jan")
		}
	})

	t.Run("Sunday is its own week start", func(t *testing.T) {
		clock := fixedClock{now: time.Date(2026, time.January, 11, 0, 0, 0, 0, time.Local)}

		r := CurrentWeekRange(clock)
		if r.StartDate != "2026-01-11" || r.EndDate != "2026-01-17" {
			t.Errorf("range = [%s, %s], want [2026-01-11, 2026-01-17]", r.StartDate, r.EndDate)
		}
	})

	t.Run("spanning two months keeps both month names", func(t *testing.T) {
		// Tuesday 31 March 2026; week is Sunday March 29th to Saturday April 4th.
		clock := fixedClock{now: time.Date(2026, time.March, 31, 12, 0, 0, 0, time.Local)}

		r := CurrentWeekRange(clock)
		if r.StartDate != "2026-03-29" || r.EndDate != "2026-04-04" {
			t.Fatalf("range = [%s, %s], want [2026-03-29, 2026-04-04]", r.StartDate, r.EndDate)
		}
		if r.DisplayText != "29th Mar - 4th Apr" {
			t.Errorf("DisplayText = %q, want %q", r.DisplayText, "29th Mar - 4th Apr")
		}
	})
}

func TestOrdinalSuffix(t *testing.T) {
	cases := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th",
		11: "th", 12: "th", 13: "th",
		21: "st", 22: "nd", 23: "rd", 24: "th", 31: "st",
	}
	for day, want := range cases {
		if got := ordinalSuffix(day); got != want {
			t.Errorf("ordinalSuffix(%d) = %q, want %q", day, got, want)
		}
	}
}
