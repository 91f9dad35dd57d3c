package animation

import "time"

// Clock provides time for animations. The host loop is expected to supply
// deltas explicitly via AnimationManager.Tick; Clock only backs the
// start-timestamp an Animation records when Play() begins a fresh run
// (Animation.StartedAt), so tests can swap it via SetClock to make that
// timestamp deterministic too.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
