package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlidingWindowLimiterAdmitsUpToLimit(t *testing.T) {
	l := NewSlidingWindowLimiter(3, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, l.allowAt(now))
	assert.True(t, l.allowAt(now))
	assert.True(t, l.allowAt(now))
	assert.False(t, l.allowAt(now), "fourth call within the window should be denied")
}

func TestSlidingWindowLimiterForgetsOldEntries(t *testing.T) {
	l := NewSlidingWindowLimiter(1, time.Minute)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, l.allowAt(start))
	assert.False(t, l.allowAt(start.Add(30*time.Second)))
	assert.True(t, l.allowAt(start.Add(61*time.Second)), "entry should have aged out of the window")
}
