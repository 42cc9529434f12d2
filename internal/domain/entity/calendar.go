// Package entity defines the core business entities for the domain layer.
package entity

// ItemKind distinguishes the two record types that appear on the calendar.
type ItemKind string

const (
	ItemKindTask  ItemKind = "task"
	ItemKindOrder ItemKind = "order"
)

// CalendarItem is an immutable snapshot of a due-dated task or order,
// reduced to the fields the calendar needs. It is built by the calendar
// repository and never mutated by the calendar subsystem.
type CalendarItem struct {
	ID       string
	Title    string
	DueDate  string
	Kind     ItemKind
	Status   string
	Priority string
}
