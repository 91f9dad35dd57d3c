package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRejectsDuplicateID(t *testing.T) {
	mgr := NewAnimationManager(nil)
	a1 := fadeAnim("x", 100*time.Millisecond)
	a2 := fadeAnim("x", 200*time.Millisecond)
	require.NoError(t, mgr.AddAnimation(a1))
	err := mgr.AddAnimation(a2)
	require.Error(t, err)
}

func TestManagerActiveCountMonotonicDecrease(t *testing.T) {
	mgr := NewAnimationManager(nil)
	for _, id := range []string{"a", "b", "c"} {
		a := fadeAnim(id, 100*time.Millisecond)
		a.Play()
		require.NoError(t, mgr.AddAnimation(a))
	}
	assert.Equal(t, 3, mgr.ActiveCount())

	now := time.Now()
	mgr.Tick(now)
	prev := mgr.ActiveCount()
	for i := 1; i <= 5; i++ {
		now = now.Add(50 * time.Millisecond)
		mgr.Tick(now)
		cur := mgr.ActiveCount()
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, 0, mgr.ActiveCount())
}

func TestManagerCleanupKeepsInfiniteLoops(t *testing.T) {
	mgr := NewAnimationManager(nil)
	cfg := AnimationConfig{Duration: 50 * time.Millisecond, Easing: Linear, Speed: 1, LoopMode: LoopInfinite}
	a := NewAnimation("loop", OpacityProperty{From: 0, To: 1}, cfg)
	a.Play()
	require.NoError(t, mgr.AddAnimation(a))

	now := time.Now()
	mgr.Tick(now)
	for i := 0; i < 5; i++ {
		now = now.Add(60 * time.Millisecond)
		mgr.Tick(now)
	}
	assert.Equal(t, 1, mgr.ActiveCount())
}

func TestManagerDeterministicTickOrder(t *testing.T) {
	mgr := NewAnimationManager(nil)
	var order []string
	ids := []string{"first", "second", "third"}
	for _, id := range ids {
		a := fadeAnim(id, 1*time.Second)
		capturedID := id
		a.Callbacks.OnUpdate = func(*Animation, AnimatedValue) { order = append(order, capturedID) }
		a.Play()
		require.NoError(t, mgr.AddAnimation(a))
	}
	now := time.Now()
	mgr.Tick(now)
	mgr.Tick(now.Add(10 * time.Millisecond))
	assert.Equal(t, []string{"first", "second", "third", "first", "second", "third"}, order)
}

func TestManagerGet(t *testing.T) {
	mgr := NewAnimationManager(nil)
	a := fadeAnim("x", 100*time.Millisecond)
	require.NoError(t, mgr.AddAnimation(a))
	got, ok := mgr.Get("x")
	assert.True(t, ok)
	assert.Same(t, a, got)
	_, ok = mgr.Get("missing")
	assert.False(t, ok)
}

func TestManagerWithPerformanceLayerDeliversUpdatesInOrder(t *testing.T) {
	mgr := NewAnimationManager(NewPerformanceLayer(OptimizationMedium))
	var order []string
	ids := []string{"first", "second", "third"}
	for _, id := range ids {
		a := fadeAnim(id, 1*time.Second)
		capturedID := id
		a.Callbacks.OnUpdate = func(*Animation, AnimatedValue) { order = append(order, capturedID) }
		a.Play()
		require.NoError(t, mgr.AddAnimation(a))
	}
	now := time.Now()
	mgr.Tick(now)
	assert.Equal(t, []string{"first", "second", "third"}, order, "flush preserves enqueue order even when routed through the performance layer")
}

func TestManagerWiredAnimationCachesRepeatedSample(t *testing.T) {
	perf := NewPerformanceLayer(OptimizationMedium)
	mgr := NewAnimationManager(perf)
	a := fadeAnim("x", 1*time.Second)
	require.NoError(t, mgr.AddAnimation(a))

	a.Seek(0.5)
	a.Seek(0.5)

	stats := perf.CacheStats()
	assert.Equal(t, uint64(1), stats.Hits, "second sample at the same quantized progress should hit the cache")
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestManagerWiresPerformanceLayerIntoTimelineChildren(t *testing.T) {
	perf := NewPerformanceLayer(OptimizationLow)
	mgr := NewAnimationManager(perf)
	var delivered bool
	children := []*TimelineChild{
		{Animation: fadeAnim("a", 50*time.Millisecond)},
	}
	children[0].Animation.Callbacks.OnUpdate = func(*Animation, AnimatedValue) { delivered = true }
	tl := NewTimeline("tl", TimelineSequential, children)
	tl.Play()
	require.NoError(t, mgr.AddTimeline(tl))

	mgr.Tick(time.Now())
	assert.True(t, delivered, "timeline children must be delivered through the same per-tick flush as standalone animations")
}
