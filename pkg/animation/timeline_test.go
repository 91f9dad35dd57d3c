package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fadeAnim(id string, d time.Duration) *Animation {
	return NewAnimation(id, OpacityProperty{From: 0, To: 1}, AnimationConfig{Duration: d, Easing: Linear, Speed: 1})
}

func TestSequentialTimelineChildProgressAtHalfway(t *testing.T) {
	children := []*TimelineChild{
		{Animation: fadeAnim("a", 200*time.Millisecond)},
		{Animation: fadeAnim("b", 200*time.Millisecond)},
		{Animation: fadeAnim("c", 200*time.Millisecond)},
	}
	tl := NewTimeline("tl", TimelineSequential, children)
	tl.Play()
	tl.Tick(300 * time.Millisecond)
	// After 300ms of a 3x200ms sequential timeline, child 0 is Completed
	// and child 1 is at progress 0.5 — the overflow from child 0's
	// completion must carry over into child 1 within the same tick.
	assert.Equal(t, StateCompleted, children[0].Animation.State())
	assert.InDelta(t, 0.5, children[1].Animation.Progress(), 1e-6)
}

func TestSequentialTimelineCompletesAtSumOfDurations(t *testing.T) {
	children := []*TimelineChild{
		{Animation: fadeAnim("a", 200*time.Millisecond)},
		{Animation: fadeAnim("b", 200*time.Millisecond)},
		{Animation: fadeAnim("c", 200*time.Millisecond)},
	}
	tl := NewTimeline("tl", TimelineSequential, children)
	tl.Play()
	completed := false
	for i := 0; i < 10 && !completed; i++ {
		completed = tl.Tick(100 * time.Millisecond)
	}
	assert.True(t, completed)
	assert.Equal(t, TimelineCompleted, tl.State())
}

func TestParallelTimelineCompletesWhenAllChildrenDo(t *testing.T) {
	children := []*TimelineChild{
		{Animation: fadeAnim("a", 100 * time.Millisecond)},
		{Animation: fadeAnim("b", 200 * time.Millisecond)},
	}
	tl := NewTimeline("tl", TimelineParallel, children)
	tl.Play()
	assert.False(t, tl.Tick(100*time.Millisecond))
	assert.Equal(t, StateCompleted, children[0].Animation.State())
	assert.NotEqual(t, StateCompleted, children[1].Animation.State())
	assert.True(t, tl.Tick(100*time.Millisecond))
	assert.Equal(t, TimelineCompleted, tl.State())
}

func TestParallelTimelineRespectsPerChildDelay(t *testing.T) {
	children := []*TimelineChild{
		{Animation: fadeAnim("a", 100 * time.Millisecond), Delay: 0},
		{Animation: fadeAnim("b", 100 * time.Millisecond), Delay: 50 * time.Millisecond},
	}
	tl := NewTimeline("tl", TimelineParallel, children)
	tl.Play()
	tl.Tick(40 * time.Millisecond)
	assert.Equal(t, StateStopped, children[1].Animation.State())
	tl.Tick(20 * time.Millisecond)
	assert.NotEqual(t, StateStopped, children[1].Animation.State())
}

func TestStoppingTimelineStopsChildren(t *testing.T) {
	children := []*TimelineChild{{Animation: fadeAnim("a", 100 * time.Millisecond)}}
	tl := NewTimeline("tl", TimelineParallel, children)
	tl.Play()
	tl.Tick(50 * time.Millisecond)
	tl.Stop()
	assert.Equal(t, StateStopped, children[0].Animation.State())
	assert.Equal(t, TimelineStopped, tl.State())
}
