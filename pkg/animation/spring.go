package animation

import "math"

// SpringConfig parameterizes a physically simulated spring: mass on the end
// of a spring (stiffness) moving through a damper (damping), an optional
// initial velocity (for chaining from a prior gesture/animation without a
// visible snap), and the rest threshold (Precision) below which the spring
// is considered settled.
//
// The simulation integrates with semi-implicit (symplectic) Euler, which
// stays stable at the fixed substep below without needing a stiffer
// solver.
type SpringConfig struct {
	Mass            float64
	Stiffness       float64
	Damping         float64
	InitialVelocity float64
	// Precision is the rest threshold applied to both velocity and
	// remaining displacement. Zero (the default for named presets) falls
	// back to springDefaultPrecision.
	Precision float64
}

// precision returns cfg.Precision, or springDefaultPrecision if unset.
func (c SpringConfig) precision() float64 {
	if c.Precision > 0 {
		return c.Precision
	}
	return springDefaultPrecision
}

// Named presets matching the tuples anime.js and react-spring ship as
// defaults for gentle/wobbly/stiff/bouncy.
var (
	SpringGentle = SpringConfig{Mass: 1, Stiffness: 120, Damping: 14}
	SpringWobbly = SpringConfig{Mass: 1, Stiffness: 180, Damping: 12}
	SpringStiff  = SpringConfig{Mass: 1, Stiffness: 210, Damping: 20}
	SpringBouncy = SpringConfig{Mass: 1, Stiffness: 300, Damping: 10}
)

// springSubstep is the fixed integration step, 1/240s.
const springSubstep = 1.0 / 240.0

// springMaxDuration caps estimation/simulation runaway for critically
// under-damped configurations that would otherwise never settle.
const springMaxDuration = 20.0

// springDefaultPrecision is the convergence threshold used when a
// SpringConfig doesn't set Precision: once the spring's velocity and
// remaining displacement both fall under this, it is considered at rest.
const springDefaultPrecision = 0.001

// SpringSimulation steps a single spring from `from` towards `to` using
// semi-implicit (symplectic) Euler integration at a fixed sub-step, so
// behavior is independent of the caller's tick granularity.
type SpringSimulation struct {
	cfg      SpringConfig
	from, to float64
	position float64
	velocity float64
	done     bool
}

// NewSpringSimulation builds a simulation initially at `from`, moving
// towards `to`, with the given initial velocity (use 0 unless chaining
// from a prior gesture/animation for velocity-preserving interrupts).
func NewSpringSimulation(cfg SpringConfig, from, to, initialVelocity float64) *SpringSimulation {
	return &SpringSimulation{
		cfg:      cfg,
		from:     from,
		to:       to,
		position: from,
		velocity: initialVelocity,
	}
}

// Step advances the simulation by dt seconds, internally subdividing into
// fixed springSubstep increments, and returns whether it has settled.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done {
		return true
	}
	if dt < 0 {
		dt = 0
	}
	steps := int(math.Ceil(dt / springSubstep))
	if steps < 1 {
		steps = 1
	}
	h := dt / float64(steps)

	for i := 0; i < steps; i++ {
		displacement := s.position - s.to
		springForce := -s.cfg.Stiffness * displacement
		dampingForce := -s.cfg.Damping * s.velocity
		accel := (springForce + dampingForce) / s.cfg.Mass

		// Semi-implicit Euler: update velocity first, then use the new
		// velocity to update position (more stable than explicit Euler
		// for stiff springs).
		s.velocity += accel * h
		s.position += s.velocity * h
	}

	precision := s.cfg.precision()
	if math.Abs(s.velocity) < precision && math.Abs(s.position-s.to) < precision {
		s.position = s.to
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// IsDone reports whether the spring has settled at rest.
func (s *SpringSimulation) IsDone() bool { return s.done }

// Position returns the current simulated position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current simulated velocity, in units/second.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// CalculatePosition simulates cfg from `from` to `to` for exactly `time`
// seconds, starting with cfg.InitialVelocity, and returns the resulting
// position. Intended for scrubbing/seeking a spring-eased animation
// without stepping it incrementally.
func CalculatePosition(cfg SpringConfig, from, to, time float64) float64 {
	if time <= 0 {
		return from
	}
	sim := NewSpringSimulation(cfg, from, to, cfg.InitialVelocity)
	remaining := time
	for remaining > 0 && !sim.IsDone() {
		step := springSubstep
		if step > remaining {
			step = remaining
		}
		sim.Step(step)
		remaining -= step
	}
	return sim.Position()
}

// EstimateDuration simulates cfg from `from` to `to` (starting with
// cfg.InitialVelocity) until it settles or springMaxDuration elapses, and
// returns the elapsed time. Used to give springs a concrete
// Animation.Duration for progress reporting and timeline sequencing, which
// otherwise have no fixed length.
func EstimateDuration(cfg SpringConfig, from, to float64) float64 {
	if from == to && cfg.InitialVelocity == 0 {
		return 0
	}
	sim := NewSpringSimulation(cfg, from, to, cfg.InitialVelocity)
	elapsed := 0.0
	for !sim.IsDone() && elapsed < springMaxDuration {
		sim.Step(springSubstep)
		elapsed += springSubstep
	}
	return math.Min(elapsed, springMaxDuration)
}

// springEasing adapts a SpringConfig to the Easing/ValueAwareEasing
// interfaces so it can be used anywhere an easing curve is accepted. Its
// Apply(t) assumes a pre-computed duration (see Duration) to convert
// normalized time back into simulated seconds; ApplyWithValues uses the
// caller-supplied from/to directly and is the preferred entry point since
// it preserves the spring's actual displacement instead of normalizing it.
type springEasing struct {
	cfg      SpringConfig
	duration float64
}

// Spring returns an Easing that delegates sampling to a physically
// simulated spring instead of a closed-form curve. duration is the fixed
// length callers intend to scrub it over; use EstimateDuration(cfg, 0, 1)
// if the caller has no better duration to pass.
func Spring(cfg SpringConfig, duration float64) Easing {
	return &springEasing{cfg: cfg, duration: duration}
}

// Apply treats t as normalized progress into duration and simulates over
// the implied [0,1] displacement.
func (s *springEasing) Apply(t float64) float64 {
	if s.duration <= 0 {
		return clampUnit(t)
	}
	return CalculatePosition(s.cfg, 0, 1, clampUnit(t)*s.duration)
}

// ApplyWithValues simulates the spring directly between from and to,
// preserving the actual displacement magnitude rather than normalizing it
// through [0,1] first.
func (s *springEasing) ApplyWithValues(t, from, to float64) float64 {
	if s.duration <= 0 {
		return to
	}
	return CalculatePosition(s.cfg, from, to, clampUnit(t)*s.duration)
}
