package calendar

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/atelier-crm/backend/internal/domain/entity"
)

// stubMonthFetcher resolves immediately with fixed items or an error.
type stubMonthFetcher struct {
	mu    sync.Mutex
	calls []DisplayedMonth
	items []entity.CalendarItem
	err   error
}

func (f *stubMonthFetcher) FetchMonth(_ context.Context, month DisplayedMonth) ([]entity.CalendarItem, error) {
	f.mu.Lock()
	f.calls = append(f.calls, month)
	f.mu.Unlock()
	return f.items, f.err
}

func (f *stubMonthFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// stubDateFetcher resolves immediately and records the requested keys.
type stubDateFetcher struct {
	mu    sync.Mutex
	calls []string
	items []entity.CalendarItem
	err   error
}

func (f *stubDateFetcher) FetchDate(_ context.Context, dateKey string) ([]entity.CalendarItem, error) {
	f.mu.Lock()
	f.calls = append(f.calls, dateKey)
	f.mu.Unlock()
	return f.items, f.err
}

func (f *stubDateFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// monthResult is one gated fetch resolution.
type monthResult struct {
	items []entity.CalendarItem
	err   error
}

// gatedMonthFetcher blocks each fetch until the test releases it through
// the gate registered for the requested month.
type gatedMonthFetcher struct {
	mu    sync.Mutex
	calls []DisplayedMonth
	gates map[int]chan monthResult
}

func (f *gatedMonthFetcher) FetchMonth(_ context.Context, month DisplayedMonth) ([]entity.CalendarItem, error) {
	f.mu.Lock()
	f.calls = append(f.calls, month)
	gate := f.gates[month.Month]
	f.mu.Unlock()

	r := <-gate
	return r.items, r.err
}

func testClock() fixedClock {
	return fixedClock{now: time.Date(2026, time.January, 15, 8, 0, 0, 0, time.Local)}
}

func jan15Items() []entity.CalendarItem {
	return []entity.CalendarItem{
		{ID: "a", Title: "Fitting", DueDate: "2026-01-15T10:00:00", Kind: entity.ItemKindTask},
		{ID: "b", Title: "Delivery", DueDate: "2026-01-15T14:00:00", Kind: entity.ItemKindOrder},
	}
}

func TestViewMount(t *testing.T) {
	months := &stubMonthFetcher{items: jan15Items()}
	dates := &stubDateFetcher{}
	v := NewView(testClock(), months, dates)

	v.Mount(context.Background())
	v.Wait()

	state := v.Snapshot()
	if state.Displayed != (DisplayedMonth{Year: 2026, Month: 0}) {
		t.Errorf("displayed = %+v, want January 2026", state.Displayed)
	}
	if state.MonthState != FetchLoaded {
		t.Errorf("month state = %s, want loaded", state.MonthState)
	}
	if months.callCount() != 1 {
		t.Errorf("expected one month fetch on mount, got %d", months.callCount())
	}
}

func TestViewNavigateMonth(t *testing.T) {
	months := &stubMonthFetcher{}
	v := NewView(testClock(), months, &stubDateFetcher{})
	v.Mount(context.Background())
	v.Wait()

	t.Run("forward then backward returns to the original month", func(t *testing.T) {
		v.NavigateMonth(context.Background(), 1)
		v.Wait()
		if got := v.Snapshot().Displayed; got != (DisplayedMonth{2026, 1}) {
			t.Errorf("displayed = %+v, want February 2026", got)
		}

		v.NavigateMonth(context.Background(), -1)
		v.Wait()
		if got := v.Snapshot().Displayed; got != (DisplayedMonth{2026, 0}) {
			t.Errorf("displayed = %+v, want January 2026", got)
		}
	})

	t.Run("each navigation triggers exactly one fetch", func(t *testing.T) {
		// One fetch from mount plus one per navigation.
		if months.callCount() != 3 {
			t.Errorf("expected 3 month fetches, got %d", months.callCount())
		}
	})

	t.Run("year rolls over at december", func(t *testing.T) {
		v2 := NewView(fixedClock{now: time.Date(2026, time.December, 5, 0, 0, 0, 0, time.Local)}, &stubMonthFetcher{}, &stubDateFetcher{})
		v2.Mount(context.Background())
		v2.NavigateMonth(context.Background(), 1)
		v2.Wait()
		if got := v2.Snapshot().Displayed; got != (DisplayedMonth{2027, 0}) {
			t.Errorf("displayed = %+v, want January 2027", got)
		}
	})
}

func TestViewMonthFetchFailure(t *testing.T) {
	months := &stubMonthFetcher{err: errors.New("service unavailable")}
	v := NewView(testClock(), months, &stubDateFetcher{})
	v.Mount(context.Background())
	v.Wait()

	state := v.Snapshot()
	if state.MonthState != FetchFailed {
		t.Fatalf("month state = %s, want failed", state.MonthState)
	}
	if state.MonthError != "service unavailable" {
		t.Errorf("month error = %q", state.MonthError)
	}
}

func TestViewSelectDate(t *testing.T) {
	t.Run("selecting an empty day is a no-op", func(t *testing.T) {
		dates := &stubDateFetcher{}
		v := NewView(testClock(), &stubMonthFetcher{items: jan15Items()}, dates)
		v.Mount(context.Background())
		v.Wait()

		v.SelectDate(context.Background(), 16)
		v.Wait()

		state := v.Snapshot()
		if state.PanelOpen {
			t.Error("panel should not open for a day with no items")
		}
		if dates.callCount() != 0 {
			t.Errorf("expected no day fetch, got %d", dates.callCount())
		}
	})

	t.Run("selecting a day with items opens the panel and fetches once", func(t *testing.T) {
		authoritative := []entity.CalendarItem{
			{ID: "a", Title: "Fitting", DueDate: "2026-01-15T10:00:00", Kind: entity.ItemKindTask},
			{ID: "b", Title: "Delivery", DueDate: "2026-01-15T14:00:00", Kind: entity.ItemKindOrder},
			{ID: "x", Title: "Added later", DueDate: "2026-01-15T18:00:00", Kind: entity.ItemKindTask},
		}
		dates := &stubDateFetcher{items: authoritative}
		v := NewView(testClock(), &stubMonthFetcher{items: jan15Items()}, dates)
		v.Mount(context.Background())
		v.Wait()

		v.SelectDate(context.Background(), 15)
		v.Wait()

		state := v.Snapshot()
		if !state.PanelOpen || state.Selected == nil {
			t.Fatal("panel should be open with a selection")
		}
		if state.Selected.DateKey != "2026-01-15" {
			t.Errorf("selected key = %q", state.Selected.DateKey)
		}
		if state.DayState != FetchLoaded {
			t.Errorf("day state = %s, want loaded", state.DayState)
		}
		if len(state.Selected.Items) != 3 {
			t.Errorf("expected authoritative items in panel, got %d", len(state.Selected.Items))
		}
		if dates.callCount() != 1 || dates.calls[0] != "2026-01-15" {
			t.Errorf("expected one day fetch for 2026-01-15, got %v", dates.calls)
		}
	})

	t.Run("day fetch failure is scoped to the panel", func(t *testing.T) {
		dates := &stubDateFetcher{err: errors.New("timeout")}
		v := NewView(testClock(), &stubMonthFetcher{items: jan15Items()}, dates)
		v.Mount(context.Background())
		v.Wait()

		v.SelectDate(context.Background(), 15)
		v.Wait()

		state := v.Snapshot()
		if state.DayState != FetchFailed || state.DayError != "timeout" {
			t.Errorf("day state = %s error = %q, want failed/timeout", state.DayState, state.DayError)
		}
		if state.MonthState != FetchLoaded {
			t.Error("month state must be unaffected by a day fetch failure")
		}
	})

	t.Run("close drops a late day result", func(t *testing.T) {
		dates := &stubDateFetcher{items: jan15Items()}
		v := NewView(testClock(), &stubMonthFetcher{items: jan15Items()}, dates)
		v.Mount(context.Background())
		v.Wait()

		v.SelectDate(context.Background(), 15)
		v.CloseDetail()
		v.Wait()

		state := v.Snapshot()
		if state.PanelOpen || state.Selected != nil {
			t.Error("panel should stay closed after CloseDetail")
		}
	})
}

func TestViewNavigationClosesPanel(t *testing.T) {
	v := NewView(testClock(), &stubMonthFetcher{items: jan15Items()}, &stubDateFetcher{items: jan15Items()})
	v.Mount(context.Background())
	v.Wait()

	v.SelectDate(context.Background(), 15)
	v.Wait()
	if !v.Snapshot().PanelOpen {
		t.Fatal("panel should be open before navigating")
	}

	v.NavigateMonth(context.Background(), 1)
	v.Wait()

	state := v.Snapshot()
	if state.PanelOpen || state.Selected != nil {
		t.Error("navigating months must close the detail panel")
	}
}

func TestViewStaleMonthResponseDiscarded(t *testing.T) {
	febItems := []entity.CalendarItem{
		{ID: "f", Title: "Show", DueDate: "2026-02-10T10:00:00", Kind: entity.ItemKindOrder},
	}
	months := &gatedMonthFetcher{gates: map[int]chan monthResult{
		0: make(chan monthResult, 1),
		1: make(chan monthResult, 1),
	}}
	v := NewView(testClock(), months, &stubDateFetcher{})

	v.Mount(context.Background())                 // January fetch in flight
	v.NavigateMonth(context.Background(), 1)      // February fetch in flight, supersedes January
	months.gates[1] <- monthResult{items: febItems}
	months.gates[0] <- monthResult{items: jan15Items()} // resolves late
	v.Wait()

	state := v.Snapshot()
	if state.Displayed != (DisplayedMonth{2026, 1}) {
		t.Fatalf("displayed = %+v, want February 2026", state.Displayed)
	}
	if state.MonthState != FetchLoaded {
		t.Fatalf("month state = %s, want loaded", state.MonthState)
	}
	// February 10th must carry the February item; the stale January result
	// must not have replaced the map.
	var day10 DayCell
	for _, c := range state.Cells {
		if c.Day == 10 {
			day10 = c
		}
	}
	if day10.ItemCount != 1 {
		t.Errorf("day 10 count = %d, want 1 (stale January data applied?)", day10.ItemCount)
	}
}
