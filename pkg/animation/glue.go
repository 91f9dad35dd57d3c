package animation

import "github.com/driftterm/driftterm/pkg/reactive"

// This file holds small adapters binding the engine's Publisher/Target
// surface to pkg/reactive, so a host never needs to hand-write them.

// ReactivePublisher adapts a *reactive.Reactive[AnimatedValue] to the
// Publisher interface. In practice no adapter type is even needed —
// Reactive[T].Set(T) already satisfies Publisher's Set(AnimatedValue)
// when T is instantiated as AnimatedValue — but the named constructor
// documents the intended wiring at call sites.
func ReactivePublisher(r *reactive.Reactive[AnimatedValue]) Publisher {
	return r
}

// ScalarSource adapts a *reactive.Reactive[float64] into the
// Target.CurrentScalar getter shape, for resolving Single/Relative
// PropertyValues against a host's live reactive state.
func ScalarSource(r *reactive.Reactive[float64]) func() float64 {
	return r.Get
}

// ColorSource adapts a *reactive.Reactive[Color] into the
// Target.CurrentColor getter shape.
func ColorSource(r *reactive.Reactive[Color]) func() Color {
	return r.Get
}

// NewReactiveTarget builds a Target backed entirely by reactive cells: its
// samples publish to value, and Single/Relative opacity-like properties
// resolve against current.
func NewReactiveTarget(id string, value *reactive.Reactive[AnimatedValue], current *reactive.Reactive[float64]) Target {
	t := Target{ID: id, Publisher: ReactivePublisher(value)}
	if current != nil {
		t.CurrentScalar = ScalarSource(current)
	}
	return t
}
