package animation

import "time"

// TimelineMode selects whether children run one after another or all at
// once.
type TimelineMode int

const (
	TimelineSequential TimelineMode = iota
	TimelineParallel
)

// TimelineState is a simplified three-state machine for timelines (no
// Paused/Reversed — children own their own state).
type TimelineState int

const (
	TimelineStopped TimelineState = iota
	TimelinePlaying
	TimelineCompleted
)

// TimelineChild pairs a child Animation with the delay (already resolved
// from any "+=N"/"-=N"/percentage label at build time) before it starts
// relative to the timeline's own start — only meaningful for parallel
// timelines; sequential timelines ignore Delay and simply chain on
// completion.
type TimelineChild struct {
	Animation *Animation
	Delay     time.Duration

	started bool
	elapsed time.Duration
}

// AnimationTimeline composes child animations sequentially or in
// parallel. Timelines own their children directly, and children do not
// reference their timeline, avoiding cyclic ownership;
// completion propagates upward purely through Tick's return value.
type AnimationTimeline struct {
	ID       TimelineId
	Mode     TimelineMode
	Children []*TimelineChild

	state        TimelineState
	currentIndex int
}

// NewTimeline constructs a Stopped timeline over children, in the given
// mode.
func NewTimeline(id TimelineId, mode TimelineMode, children []*TimelineChild) *AnimationTimeline {
	return &AnimationTimeline{ID: id, Mode: mode, Children: children, state: TimelineStopped}
}

// State returns the timeline's current state.
func (tl *AnimationTimeline) State() TimelineState { return tl.state }

// Play starts the timeline: for Sequential, plays only children[0]; for
// Parallel, plays every child whose Delay is zero (children with a
// positive Delay start once their accumulated elapsed time in Tick
// reaches it).
func (tl *AnimationTimeline) Play() {
	if len(tl.Children) == 0 {
		tl.state = TimelineCompleted
		return
	}
	tl.state = TimelinePlaying
	tl.currentIndex = 0
	for _, c := range tl.Children {
		c.started = false
		c.elapsed = 0
	}
	switch tl.Mode {
	case TimelineSequential:
		first := tl.Children[0]
		first.started = true
		first.Animation.Play()
	case TimelineParallel:
		for _, c := range tl.Children {
			if c.Delay <= 0 {
				c.started = true
				c.Animation.Play()
			}
		}
	}
}

// Stop stops the timeline and every child.
func (tl *AnimationTimeline) Stop() {
	tl.state = TimelineStopped
	tl.currentIndex = 0
	for _, c := range tl.Children {
		c.Animation.Stop()
		c.started = false
		c.elapsed = 0
	}
}

// Tick advances the timeline by delta. Returns true if the timeline
// transitioned to Completed during this call.
func (tl *AnimationTimeline) Tick(delta time.Duration) bool {
	if tl.state != TimelinePlaying {
		return false
	}
	switch tl.Mode {
	case TimelineSequential:
		return tl.tickSequential(delta)
	default:
		return tl.tickParallel(delta)
	}
}

func (tl *AnimationTimeline) tickSequential(delta time.Duration) bool {
	for tl.currentIndex < len(tl.Children) {
		child := tl.Children[tl.currentIndex]
		completed := child.Animation.Tick(delta)
		if !completed {
			return false
		}
		// Hand the unused remainder of delta to the next child in the
		// same Tick call, so a long tick (or a zero/short duration child)
		// doesn't introduce a one-frame gap: the sum of child durations
		// must be the exact wall time to completion, with no gaps.
		delta = childOverflow(child.Animation)

		tl.currentIndex++
		if tl.currentIndex >= len(tl.Children) {
			tl.state = TimelineCompleted
			return true
		}
		next := tl.Children[tl.currentIndex]
		next.started = true
		next.Animation.Play()
	}
	return false
}

// childOverflow returns, in real (unscaled) time, how much of the most
// recent Tick call's delta ran past a.Config.Duration.
func childOverflow(a *Animation) time.Duration {
	overflow := a.CurrentTime() - a.Config.Duration
	if overflow <= 0 {
		return 0
	}
	speed := a.Config.Speed
	if speed <= 0 {
		speed = 1
	}
	return time.Duration(float64(overflow) / speed)
}

func (tl *AnimationTimeline) tickParallel(delta time.Duration) bool {
	allDone := true
	for _, c := range tl.Children {
		if !c.started {
			c.elapsed += delta
			if c.elapsed < c.Delay {
				allDone = false
				continue
			}
			c.started = true
			c.Animation.Play()
			remainder := c.elapsed - c.Delay
			c.Animation.Tick(remainder)
		} else {
			c.Animation.Tick(delta)
		}
		if c.Animation.State() != StateCompleted {
			allDone = false
		}
	}
	if allDone {
		tl.state = TimelineCompleted
		return true
	}
	return false
}
