// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/atelier-crm/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock on the real time.
type systemClock struct{}

// NewSystemClock creates a clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current instant in the local timezone.
func (systemClock) Now() time.Time {
	return time.Now()
}
