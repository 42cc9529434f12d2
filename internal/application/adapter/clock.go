// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts the current time so that "today", "yesterday" and
// "this week" computations can be fixed in tests.
type Clock interface {
	// Now returns the current instant in the local timezone.
	Now() time.Time
}
