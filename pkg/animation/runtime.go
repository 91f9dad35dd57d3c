package animation

import "time"

// AnimationState is the per-animation state machine.
type AnimationState int

const (
	StateStopped AnimationState = iota
	StatePlaying
	StatePaused
	StateCompleted
	StateReversed
)

func (s AnimationState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateReversed:
		return "reversed"
	default:
		return "unknown"
	}
}

// LoopMode controls what happens when raw progress reaches 1.
type LoopMode int

const (
	LoopNone LoopMode = iota
	LoopInfinite
	LoopCount
	LoopPingPong
)

// AnimationConfig is the validated, build-time-fixed configuration for one
// Animation. Builders (api.go) are responsible for producing only valid
// configs; the runtime assumes Duration >= 0, Speed > 0, and (for
// LoopCount) Count >= 1.
type AnimationConfig struct {
	Duration  time.Duration
	Easing    Easing
	Delay     time.Duration
	LoopMode  LoopMode
	Count     int // only meaningful when LoopMode == LoopCount
	Reverse   bool
	Speed     float64
	AutoPlay  bool
	AutoReverse bool
}

// Publisher is the external reactive-state collaborator an Animation
// writes samples through via Set. The pkg/reactive.Reactive[AnimatedValue]
// type satisfies this, but any host state container can.
type Publisher interface {
	Set(value AnimatedValue)
}

// Callbacks is the outbound callback surface of an Animation. Every
// field is optional; nil callbacks are simply not invoked. Declared as
// plain function values rather than an interface so callers can populate
// only the hooks they need.
type Callbacks struct {
	OnStart    func(*Animation)
	OnUpdate   func(*Animation, AnimatedValue)
	OnLoop     func(*Animation, int)
	OnComplete func(*Animation)
	OnPause    func(*Animation)
	OnStop     func(*Animation)
}

// Animation is a single time-parameterized property animation. It is
// created via NewAnimation (typically from the builder layer in api.go)
// and owned exclusively by whichever AnimationManager it is added to.
type Animation struct {
	ID       AnimationId
	Property AnimatedProperty
	Config   AnimationConfig
	Callbacks Callbacks
	Publisher Publisher

	// Resolver, if set, rebuilds Property from the live target value each
	// time Play() starts a fresh run (not a resume from Pause). This is
	// how api.go's Single/Relative property values resolve against the
	// current runtime value at play() time instead of at build time.
	Resolver func() AnimatedProperty

	state          AnimationState
	currentTime    time.Duration
	loopsCompleted int
	isReversed     bool
	progress       float64
	hasSample      bool
	currentValue   AnimatedValue
	startedAt      time.Time
	delayElapsed   time.Duration

	// perf, when non-nil, routes sampling through the owning
	// AnimationManager's optimization layer: interpolated values are
	// looked up/stored in its cache, and delivery to Publisher/OnUpdate is
	// queued instead of firing synchronously. Set by AnimationManager when
	// the animation is registered; a bare Animation never populates it and
	// always delivers synchronously.
	perf *PerformanceLayer
	// generation increments every time a fresh run begins (a non-resume
	// Play, or a Stop that discards the current run), so cache entries
	// keyed on fingerprint() can't outlive the run that produced them —
	// important for Resolver-backed animations, whose Property can change
	// out from under an unchanged ID.
	generation int
}

// NewAnimation constructs an Animation in the Stopped state. If
// cfg.AutoPlay is set, Play is called immediately.
func NewAnimation(id AnimationId, property AnimatedProperty, cfg AnimationConfig) *Animation {
	if cfg.Speed <= 0 {
		cfg.Speed = 1
	}
	a := &Animation{ID: id, Property: property, Config: cfg, state: StateStopped}
	a.isReversed = cfg.Reverse
	if cfg.AutoPlay {
		a.Play()
	}
	return a
}

// State returns the current runtime state.
func (a *Animation) State() AnimationState { return a.state }

// Progress returns the eased, directional progress computed on the most
// recent tick (0 before the first tick).
func (a *Animation) Progress() float64 { return a.progress }

// CurrentTime returns elapsed playback time, scaled by Speed, since the
// most recent play()/restart.
func (a *Animation) CurrentTime() time.Duration { return a.currentTime }

// LoopsCompleted returns how many loop boundaries have fired.
func (a *Animation) LoopsCompleted() int { return a.loopsCompleted }

// IsReversed reports the current playback direction.
func (a *Animation) IsReversed() bool { return a.isReversed }

// CurrentValue returns the most recently published sample, if any.
func (a *Animation) CurrentValue() (AnimatedValue, bool) { return a.currentValue, a.hasSample }

// Play transitions Stopped|Completed|Paused -> Playing and fires OnStart,
// but only on a fresh run (from Stopped or Completed), not on a resume from
// Paused: two Play calls without an intervening Stop fire OnStart only on
// the first. A fresh run from Completed starts again from time zero.
func (a *Animation) Play() {
	switch a.state {
	case StatePlaying, StateReversed:
		return
	case StatePaused:
		a.state = a.directionalState()
		return
	}
	wasStopped := a.state == StateStopped || a.state == StateCompleted
	if a.state == StateCompleted {
		a.currentTime = 0
		a.loopsCompleted = 0
	}
	if wasStopped && a.Resolver != nil {
		a.Property = a.Resolver()
	}
	a.state = a.directionalState()
	a.delayElapsed = 0
	if wasStopped {
		a.startedAt = Now()
		a.generation++
	}
	if wasStopped && a.Callbacks.OnStart != nil {
		a.Callbacks.OnStart(a)
	}
}

// StartedAt returns the wall-clock time at which the current run began —
// the moment the most recent fresh Play() (not a resume from Pause)
// transitioned this animation out of Stopped/Completed. Zero until the
// first such Play().
func (a *Animation) StartedAt() time.Time { return a.startedAt }

func (a *Animation) directionalState() AnimationState {
	if a.isReversed {
		return StateReversed
	}
	return StatePlaying
}

// Pause transitions Playing|Reversed -> Paused and fires OnPause.
func (a *Animation) Pause() {
	if a.state != StatePlaying && a.state != StateReversed {
		return
	}
	a.state = StatePaused
	if a.Callbacks.OnPause != nil {
		a.Callbacks.OnPause(a)
	}
}

// Stop transitions to Stopped, resetting time/progress/loop counters and
// dropping the current sample, then fires OnStop. Idempotent: a second
// Stop() call is a no-op beyond re-zeroing already-zero state, and fires
// no further OnStop.
func (a *Animation) Stop() {
	wasStopped := a.state == StateStopped
	a.state = StateStopped
	a.currentTime = 0
	a.progress = 0
	a.loopsCompleted = 0
	a.isReversed = a.Config.Reverse
	a.hasSample = false
	a.delayElapsed = 0
	a.generation++
	if !wasStopped && a.Callbacks.OnStop != nil {
		a.Callbacks.OnStop(a)
	}
}

// Reverse flips the playback direction. If currently playing forward it
// relabels the state to Reversed (and vice versa); if paused or stopped it
// only flips the flag that will take effect on the next Play.
func (a *Animation) Reverse() {
	a.isReversed = !a.isReversed
	switch a.state {
	case StatePlaying, StateReversed:
		a.state = a.directionalState()
	}
}

// SetSpeed changes the playback rate. A speed of 0 freezes progress
// without changing state; negative speeds are rejected (no-op).
func (a *Animation) SetSpeed(speed float64) {
	if speed < 0 {
		return
	}
	a.Config.Speed = speed
}

// Seek jumps current_time directly to progress p (in [0,1] of Duration)
// without invoking loop or completion handling. Seeking past the end does
// not fire OnComplete unless the following tick's raw progress is itself
// >= 1.
func (a *Animation) Seek(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	a.currentTime = time.Duration(p * float64(a.Config.Duration))
	raw := p
	directional := raw
	if a.isReversed {
		directional = 1 - raw
	}
	a.sample(directional)
}

// Tick advances the animation by delta. It returns true if the animation
// transitioned to Completed during this call.
func (a *Animation) Tick(delta time.Duration) bool {
	if a.state != StatePlaying && a.state != StateReversed {
		return false
	}

	if a.delayElapsed < a.Config.Delay {
		a.delayElapsed += delta
		if a.delayElapsed < a.Config.Delay {
			return false
		}
		// Only the remainder past the delay window counts this tick.
		delta = a.delayElapsed - a.Config.Delay
	}

	scaled := time.Duration(float64(delta) * a.Config.Speed)
	a.currentTime += scaled

	raw := 1.0
	if a.Config.Duration > 0 {
		raw = float64(a.currentTime) / float64(a.Config.Duration)
		if raw > 1 {
			raw = 1
		}
		if raw < 0 {
			raw = 0
		}
	}

	directional := raw
	if a.isReversed {
		directional = 1 - raw
	}
	a.sample(directional)

	if raw >= 1 {
		return a.handleCompletion()
	}
	return false
}

// sample applies easing to directional progress, interpolates the
// property (through the performance cache when wired), and either
// delivers the result immediately or queues it on the performance layer's
// batch for the owning manager to flush at end of tick.
func (a *Animation) sample(directional float64) {
	easing := a.Config.Easing
	if easing == nil {
		easing = Linear
	}
	var eased float64
	if va, ok := easing.(ValueAwareEasing); ok {
		// Spring: preserve amplitude/velocity instead of normalizing
		// through the plain Apply(t) -> [0,1] interface.
		eased = va.ApplyWithValues(directional, 0, 1)
	} else {
		eased = easing.Apply(directional)
	}
	a.progress = eased

	value := a.interpolate(eased)
	a.currentValue = value
	a.hasSample = true

	if a.perf != nil {
		a.perf.Enqueue(a.ID, value, a.deliver)
		return
	}
	a.deliver(value)
}

// interpolate resolves the eased sample, consulting the performance
// layer's LRU first when one is wired so repeated (fingerprint, bucket)
// pairs within a run skip Property.Interpolate entirely.
func (a *Animation) interpolate(eased float64) AnimatedValue {
	if a.perf == nil || a.perf.Cache == nil {
		return a.Property.Interpolate(eased)
	}
	fp := a.fingerprint()
	if cached, ok := a.perf.Cache.Get(fp, eased); ok {
		return cached
	}
	value := a.Property.Interpolate(eased)
	a.perf.Cache.Put(fp, eased, value)
	return value
}

// fingerprint identifies the (animation, run) pair a cached sample belongs
// to: ID alone would let a Resolver-driven restart match stale entries
// from the previous run against the same ID.
func (a *Animation) fingerprint() string {
	return a.ID + "#" + itoa64(int64(a.generation))
}

// deliver publishes value to Publisher and OnUpdate. Called either
// directly from sample() (no performance layer wired) or by the owning
// AnimationManager once per tick, after FlushBatch, when one is.
func (a *Animation) deliver(value AnimatedValue) {
	if a.Publisher != nil {
		a.Publisher.Set(value)
	}
	if a.Callbacks.OnUpdate != nil {
		a.Callbacks.OnUpdate(a, value)
	}
}

// handleCompletion runs the loop-mode transition for a completed tick.
// At most one loop transition happens per call, so a zero-duration
// animation with a looping mode cannot busy-loop within a single Tick — it
// stays Playing with raw=1 and progresses again only on the next Tick.
func (a *Animation) handleCompletion() bool {
	switch a.Config.LoopMode {
	case LoopNone:
		a.state = StateCompleted
		if a.Callbacks.OnComplete != nil {
			a.Callbacks.OnComplete(a)
		}
		return true

	case LoopInfinite:
		a.currentTime = 0
		a.loopsCompleted++
		if a.Config.AutoReverse {
			a.isReversed = !a.isReversed
			a.state = a.directionalState()
		}
		if a.Callbacks.OnLoop != nil {
			a.Callbacks.OnLoop(a, a.loopsCompleted)
		}
		return false

	case LoopCount:
		a.loopsCompleted++
		if a.loopsCompleted < a.Config.Count {
			a.currentTime = 0
			if a.Config.AutoReverse {
				a.isReversed = !a.isReversed
				a.state = a.directionalState()
			}
			if a.Callbacks.OnLoop != nil {
				a.Callbacks.OnLoop(a, a.loopsCompleted)
			}
			return false
		}
		a.state = StateCompleted
		if a.Callbacks.OnComplete != nil {
			a.Callbacks.OnComplete(a)
		}
		return true

	case LoopPingPong:
		a.isReversed = !a.isReversed
		a.currentTime = 0
		a.loopsCompleted++
		a.state = a.directionalState()
		if a.Callbacks.OnLoop != nil {
			a.Callbacks.OnLoop(a, a.loopsCompleted)
		}
		return false

	default:
		a.state = StateCompleted
		return true
	}
}
