package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestPlayRecordsStartedAtFromClock(t *testing.T) {
	fc := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(fc)
	defer SetClock(prev)

	anim := NewAnimation("fade", OpacityProperty{From: 0, To: 1}, newFadeConfig(time.Second, Linear))
	require.True(t, anim.StartedAt().IsZero(), "no Play() yet")

	anim.Play()
	assert.Equal(t, fc.now, anim.StartedAt())

	fc.now = fc.now.Add(time.Hour)
	anim.Tick(100 * time.Millisecond)
	anim.Pause()
	anim.Play() // resume from Paused, not a fresh run
	assert.Equal(t, fc.now.Add(-time.Hour), anim.StartedAt(), "resume must not move StartedAt")

	anim.Stop()
	anim.Play() // fresh run again
	assert.Equal(t, fc.now, anim.StartedAt())
}

func TestSetClockReturnsPrevious(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0)}
	prev := SetClock(fc)
	assert.Equal(t, realClock{}, prev)
	SetClock(prev)
}
