package game

import "time"

// MinForceGap is the floor on forced moves. A direction key moves the snake
// immediately, but never sooner than this after the previous move.
const MinForceGap = 50 * time.Millisecond

// MoveClock decides when the snake moves: on a fixed per-tier interval, or
// early on a forced move subject to the MinForceGap floor. It carries the
// instant of the previous move; callers supply now, which keeps the timing
// logic testable.
type MoveClock struct {
	interval time.Duration
	last     time.Time
}

// NewMoveClock creates a clock with the given move interval. The previous-
// move cursor starts at start, so the first move fires one interval in.
func NewMoveClock(interval time.Duration, start time.Time) *MoveClock {
	return &MoveClock{interval: interval, last: start}
}

// ShouldMove reports whether a move fires at now, advancing the cursor when
// it does.
func (c *MoveClock) ShouldMove(now time.Time, force bool) bool {
	elapsed := now.Sub(c.last)
	if elapsed >= c.interval || (force && elapsed >= MinForceGap) {
		c.last = now
		return true
	}
	return false
}

// Interval returns the configured move interval.
func (c *MoveClock) Interval() time.Duration {
	return c.interval
}
