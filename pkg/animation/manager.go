package animation

import (
	"time"

	drifterrors "github.com/driftterm/driftterm/pkg/errors"
)

// AnimationManager owns every Animation and AnimationTimeline in a frame
// loop, advancing them on Tick and cleaning up finished entries. It keeps
// a separate insertion-order slice alongside its maps so that ticking is
// deterministic across a run, without relying on Go's randomized map
// iteration.
type AnimationManager struct {
	animations map[AnimationId]*Animation
	timelines  map[TimelineId]*AnimationTimeline

	animationOrder []AnimationId
	timelineOrder  []TimelineId

	lastUpdate time.Time
	hasTicked  bool

	perf *PerformanceLayer
}

// NewAnimationManager constructs an empty manager. perf may be nil to skip
// the optimization layer entirely.
func NewAnimationManager(perf *PerformanceLayer) *AnimationManager {
	return &AnimationManager{
		animations: make(map[AnimationId]*Animation),
		timelines:  make(map[TimelineId]*AnimationTimeline),
		perf:       perf,
	}
}

// AddAnimation inserts a, keyed by a.ID. Returns a DuplicateId error
// (pkg/errors, KindDuplicateID) if the id is already registered —
// last-wins insertion is disallowed.
func (m *AnimationManager) AddAnimation(a *Animation) error {
	if _, exists := m.animations[a.ID]; exists {
		return drifterrors.New("AnimationManager.AddAnimation", drifterrors.KindDuplicateID, errDuplicateID(a.ID))
	}
	a.perf = m.perf
	m.animations[a.ID] = a
	m.animationOrder = append(m.animationOrder, a.ID)
	return nil
}

// AddTimeline inserts t, keyed by t.ID, with the same duplicate-id policy
// as AddAnimation.
func (m *AnimationManager) AddTimeline(t *AnimationTimeline) error {
	if _, exists := m.timelines[t.ID]; exists {
		return drifterrors.New("AnimationManager.AddTimeline", drifterrors.KindDuplicateID, errDuplicateID(t.ID))
	}
	for _, c := range t.Children {
		c.Animation.perf = m.perf
	}
	m.timelines[t.ID] = t
	m.timelineOrder = append(m.timelineOrder, t.ID)
	return nil
}

// Get returns the animation registered under id, if any.
func (m *AnimationManager) Get(id AnimationId) (*Animation, bool) {
	a, ok := m.animations[id]
	return a, ok
}

// GetTimeline returns the timeline registered under id, if any.
func (m *AnimationManager) GetTimeline(id TimelineId) (*AnimationTimeline, bool) {
	t, ok := m.timelines[id]
	return t, ok
}

// Tick advances every live animation and timeline by the delta since the
// last call (0 on the first call). When a performance layer is wired, each
// animation's sample is cached/queued instead of delivered inline during
// Tick, and FlushBatch's results are delivered here, once per tick, after
// every animation and timeline has advanced. Then cleanup runs. Standalone
// animations tick before timelines, in insertion order.
func (m *AnimationManager) Tick(now time.Time) {
	var delta time.Duration
	if m.hasTicked {
		delta = now.Sub(m.lastUpdate)
	}
	m.lastUpdate = now
	m.hasTicked = true

	if m.perf != nil {
		m.perf.BeginFrame()
	}

	for _, id := range m.animationOrder {
		a, ok := m.animations[id]
		if !ok {
			continue
		}
		a.Tick(delta)
	}
	for _, id := range m.timelineOrder {
		t, ok := m.timelines[id]
		if !ok {
			continue
		}
		t.Tick(delta)
	}

	if m.perf != nil {
		for _, u := range m.perf.FlushBatch() {
			u.Deliver(u.Value)
		}
	}

	m.cleanup()
}

// cleanup removes Completed animations whose LoopMode is not Infinite or
// Count-with-loops-remaining — i.e. entries that can never become live
// again — and Completed timelines. Order slices are compacted in place to
// preserve remaining relative order.
func (m *AnimationManager) cleanup() {
	m.animationOrder = filterIDs(m.animationOrder, func(id AnimationId) bool {
		a := m.animations[id]
		if a == nil {
			return false
		}
		if a.State() == StateCompleted && a.Config.LoopMode != LoopInfinite {
			delete(m.animations, id)
			return false
		}
		return true
	})
	m.timelineOrder = filterIDs(m.timelineOrder, func(id TimelineId) bool {
		t := m.timelines[id]
		if t == nil {
			return false
		}
		if t.State() == TimelineCompleted {
			delete(m.timelines, id)
			return false
		}
		return true
	})
}

func filterIDs(ids []string, keep func(string) bool) []string {
	out := ids[:0]
	for _, id := range ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}

// ActiveCount returns the number of live animations plus live timelines.
func (m *AnimationManager) ActiveCount() int {
	return len(m.animations) + len(m.timelines)
}

type duplicateIDError struct{ id string }

func (e *duplicateIDError) Error() string { return "duplicate id: " + e.id }

func errDuplicateID(id string) error { return &duplicateIDError{id: id} }
