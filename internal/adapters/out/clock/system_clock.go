// Package clock provides the wall clock used by the registry.
package clock

import (
	"time"

	"logistics/internal/core/ports"
)

var _ ports.Clock = SystemClock{}

// SystemClock reads the current time in UTC.
type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
