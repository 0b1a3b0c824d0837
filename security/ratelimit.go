package security

import (
	"sync"
	"time"
)

// SlidingWindowLimiter admits at most Limit operations within any Window
// duration, tracked with a mutex-guarded slice of timestamps rather
// than a token bucket: Allow walks the buffer, drops every entry older
// than now-Window, and admits the call only if fewer than Limit entries
// remain. Bookkeeping is O(N) in the window's operation count, which is
// the explicit tradeoff against a token bucket's O(1) refill — this
// limiter can answer "how many ops happened in the last T seconds"
// exactly, which a token bucket cannot.
type SlidingWindowLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	times  []time.Time // admitted timestamps, oldest first
}

// The package default limit, when a caller wants one: 100 operations per
// 60 seconds.
const (
	DefaultRateLimit  = 100
	DefaultRateWindow = 60 * time.Second
)

// NewSlidingWindowLimiter returns a limiter admitting at most limit
// operations per window. The package default, when a caller wants one, is
// DefaultRateLimit operations per DefaultRateWindow.
func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{limit: limit, window: window}
}

// Allow reports whether a new operation may proceed right now, and if so,
// records it.
func (l *SlidingWindowLimiter) Allow() bool {
	return l.allowAt(time.Now())
}

func (l *SlidingWindowLimiter) allowAt(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	kept := l.times[:0]
	for _, t := range l.times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.times = kept

	if len(l.times) >= l.limit {
		return false
	}
	l.times = append(l.times, now)
	return true
}
