package calendar

import (
	"context"
	"sync"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
)

// FetchState tracks one async fetch operation of the view.
type FetchState string

const (
	FetchIdle    FetchState = "idle"
	FetchLoading FetchState = "loading"
	FetchLoaded  FetchState = "loaded"
	FetchFailed  FetchState = "failed"
)

// genericFetchError is shown when the service layer reports a failure
// without a usable message.
const genericFetchError = "Something went wrong. Please try again."

// MonthFetcher loads all calendar items due within a month.
type MonthFetcher interface {
	FetchMonth(ctx context.Context, month DisplayedMonth) ([]entity.CalendarItem, error)
}

// DateFetcher loads the authoritative item list for one date key.
type DateFetcher interface {
	FetchDate(ctx context.Context, dateKey string) ([]entity.CalendarItem, error)
}

// SelectedDate is the day the detail panel is showing. Items holds the
// month-level aggregate captured at selection time; the day-level fetch
// replaces it with authoritative data when it resolves.
type SelectedDate struct {
	Year    int
	Month   int
	Day     int
	DateKey string
	Items   []entity.CalendarItem
}

// ViewState is an immutable snapshot of the view for rendering.
type ViewState struct {
	Displayed  DisplayedMonth
	MonthState FetchState
	MonthError string
	Cells      []DayCell
	PanelOpen  bool
	DayState   FetchState
	DayError   string
	Selected   *SelectedDate
}

// View is the calendar view controller. It owns the displayed month, the
// month-level item map and the detail-panel selection, and runs the two
// independent async fetches of the view. All state is replaced, not
// mutated, under a single mutex; a stale fetch result is discarded when
// its generation (month) or date key (panel) no longer matches.
type View struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	clock  adapter.Clock
	months MonthFetcher
	dates  DateFetcher

	displayed  DisplayedMonth
	monthState FetchState
	monthErr   string
	itemMap    DateItemMap
	monthGen   uint64

	panelOpen bool
	dayState  FetchState
	dayErr    string
	selected  *SelectedDate
}

// NewView creates a calendar view controller over the given fetchers.
func NewView(clock adapter.Clock, months MonthFetcher, dates DateFetcher) *View {
	return &View{
		clock:      clock,
		months:     months,
		dates:      dates,
		monthState: FetchIdle,
		dayState:   FetchIdle,
		itemMap:    DateItemMap{},
	}
}

// Mount initializes the view on the clock's current month and starts the
// first month-level fetch.
func (v *View) Mount(ctx context.Context) {
	now := v.clock.Now()

	v.mu.Lock()
	v.displayed = DisplayedMonth{Year: now.Year(), Month: int(now.Month()) - 1}
	v.startMonthFetchLocked(ctx)
	v.mu.Unlock()
}

// NavigateMonth advances the displayed month by direction (-1 or +1) and
// starts a new month-level fetch. An in-flight fetch is not cancelled;
// its result is discarded when it resolves against a newer generation.
// The detail panel is force-closed so it cannot show a day inconsistent
// with the new month.
func (v *View) NavigateMonth(ctx context.Context, direction int) {
	v.mu.Lock()
	v.displayed = v.displayed.Next(direction)
	v.closeDetailLocked()
	v.startMonthFetchLocked(ctx)
	v.mu.Unlock()
}

// SelectDate opens the detail panel for a day of the displayed month.
// Selecting a day with no items is a no-op. The panel opens immediately
// with the month-level aggregate and a day-level fetch is issued for the
// authoritative list.
func (v *View) SelectDate(ctx context.Context, day int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := ItemsForDate(v.itemMap, v.displayed.Year, v.displayed.Month, day)
	if len(items) == 0 {
		return
	}

	key := DateKey(v.displayed.Year, v.displayed.Month, day)
	v.selected = &SelectedDate{
		Year:    v.displayed.Year,
		Month:   v.displayed.Month,
		Day:     day,
		DateKey: key,
		Items:   items,
	}
	v.panelOpen = true
	v.dayState = FetchLoading
	v.dayErr = ""

	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		fetched, err := v.dates.FetchDate(ctx, key)

		v.mu.Lock()
		defer v.mu.Unlock()
		// Drop the result unless the panel still references this date.
		if !v.panelOpen || v.selected == nil || v.selected.DateKey != key {
			return
		}
		if err != nil {
			v.dayState = FetchFailed
			v.dayErr = errorMessage(err)
			return
		}
		v.dayState = FetchLoaded
		sel := *v.selected
		sel.Items = fetched
		v.selected = &sel
	}()
}

// CloseDetail closes the detail panel. An in-flight day-level fetch is
// not cancelled; its result is dropped on arrival.
func (v *View) CloseDetail() {
	v.mu.Lock()
	v.closeDetailLocked()
	v.mu.Unlock()
}

// Snapshot returns a copy of the view state with the grid cells rendered
// for the displayed month.
func (v *View) Snapshot() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := ViewState{
		Displayed:  v.displayed,
		MonthState: v.monthState,
		MonthError: v.monthErr,
		Cells:      RenderMonth(v.displayed, v.itemMap, v.clock),
		PanelOpen:  v.panelOpen,
		DayState:   v.dayState,
		DayError:   v.dayErr,
	}
	if v.selected != nil {
		sel := *v.selected
		state.Selected = &sel
	}
	return state
}

// Wait blocks until all in-flight fetches have settled. Callers that
// need a settled view (tests, server-side rendering) use this after
// driving the controller.
func (v *View) Wait() {
	v.wg.Wait()
}

// startMonthFetchLocked begins a month-level fetch for the displayed
// month. Must be called with the mutex held.
func (v *View) startMonthFetchLocked(ctx context.Context) {
	v.monthGen++
	gen := v.monthGen
	target := v.displayed
	v.monthState = FetchLoading
	v.monthErr = ""

	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		items, err := v.months.FetchMonth(ctx, target)

		v.mu.Lock()
		defer v.mu.Unlock()
		// Stale-response guard: a fetch superseded by a later navigation
		// must not overwrite the grid.
		if gen != v.monthGen {
			return
		}
		if err != nil {
			v.monthState = FetchFailed
			v.monthErr = errorMessage(err)
			v.itemMap = DateItemMap{}
			return
		}
		v.monthState = FetchLoaded
		v.itemMap = BuildDateItemMap(items)
	}()
}

// closeDetailLocked resets the panel state. Must be called with the
// mutex held.
func (v *View) closeDetailLocked() {
	v.panelOpen = false
	v.selected = nil
	v.dayState = FetchIdle
	v.dayErr = ""
}

// errorMessage extracts a user-facing message from a service error,
// falling back to a generic message.
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return genericFetchError
	}
	return err.Error()
}
