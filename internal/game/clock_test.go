package game

import (
	"testing"
	"time"
)

func TestMoveClockInterval(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewMoveClock(300*time.Millisecond, start)

	if c.ShouldMove(start.Add(100*time.Millisecond), false) {
		t.Error("Clock fired before the interval elapsed")
	}
	if c.ShouldMove(start.Add(299*time.Millisecond), false) {
		t.Error("Clock fired just before the interval elapsed")
	}
	if !c.ShouldMove(start.Add(300*time.Millisecond), false) {
		t.Error("Clock did not fire at the interval")
	}
	// Cursor reset on fire: the next window starts at the fire time.
	if c.ShouldMove(start.Add(400*time.Millisecond), false) {
		t.Error("Clock fired again only 100ms after the last move")
	}
	if !c.ShouldMove(start.Add(600*time.Millisecond), false) {
		t.Error("Clock did not fire a full interval after the last move")
	}
}

func TestMoveClockForce(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		force   bool
		fires   bool
	}{
		{"forced before the floor", 20 * time.Millisecond, true, false},
		{"forced just under the floor", 49 * time.Millisecond, true, false},
		{"forced at the floor", 50 * time.Millisecond, true, true},
		{"forced between floor and interval", 120 * time.Millisecond, true, true},
		{"unforced between floor and interval", 120 * time.Millisecond, false, false},
		{"unforced at the interval", 300 * time.Millisecond, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Unix(100, 0)
			c := NewMoveClock(300*time.Millisecond, start)
			if got := c.ShouldMove(start.Add(tc.elapsed), tc.force); got != tc.fires {
				t.Errorf("ShouldMove(+%v, force=%v) = %v, expected %v", tc.elapsed, tc.force, got, tc.fires)
			}
		})
	}
}

func TestMoveClockForceResetsCursor(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewMoveClock(300*time.Millisecond, start)

	if !c.ShouldMove(start.Add(80*time.Millisecond), true) {
		t.Fatal("Forced move past the floor did not fire")
	}
	// The forced move consumed the window; the old deadline is gone.
	if c.ShouldMove(start.Add(300*time.Millisecond), false) {
		t.Error("Clock fired on the pre-force deadline")
	}
	if !c.ShouldMove(start.Add(380*time.Millisecond), false) {
		t.Error("Clock did not fire a full interval after the forced move")
	}
}

func TestMoveClockFastTierFloor(t *testing.T) {
	// With a 50ms interval the floor and the interval coincide: forcing
	// cannot outrun the schedule.
	start := time.Unix(100, 0)
	c := NewMoveClock(50*time.Millisecond, start)

	if c.ShouldMove(start.Add(30*time.Millisecond), true) {
		t.Error("Forced move beat the floor on the fastest tier")
	}
	if !c.ShouldMove(start.Add(50*time.Millisecond), true) {
		t.Error("Clock did not fire at the shared floor and interval")
	}
}
