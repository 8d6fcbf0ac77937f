package clock_test

import (
	"testing"
	"time"

	"logistics/internal/adapters/out/clock"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_Now(t *testing.T) {
	// Given
	c := clock.NewSystemClock()
	before := time.Now()

	// When
	now := c.Now()

	// Then
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinRange(t, now, before.Add(-time.Second), time.Now().Add(time.Second))
}
