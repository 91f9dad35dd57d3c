// Package animation is a frame-driven animation engine: it interpolates
// values of arbitrary properties over time, composes animations into
// timelines and staggered groups, resolves a library of easing functions
// (including a physically simulated spring), and schedules per-frame work
// for large numbers of concurrent animations.
//
// The engine owns no threads, timers, or event loop. A host drives time by
// calling AnimationManager.Tick(now) once per frame; everything else —
// easing, value interpolation, keyframe sampling, stagger delays, loop and
// completion handling — runs synchronously inside that call.
//
// A minimal host loop:
//
//	mgr := animation.NewAnimationManager(nil)
//	anims, _ := animation.Animate([]animation.Target{target}, animation.AnimateParams{
//		Duration: 500 * time.Millisecond,
//		Easing:   animation.EaseOut,
//		Opacity:  ptr(animation.FromTo(0, 1)),
//		AutoPlay: true,
//	})
//	mgr.AddAnimation(anims[0])
//	for host.Running() {
//		mgr.Tick(time.Now())
//	}
//
// Package layout follows the leaf-to-root shape of the design: curves.go
// and spring.go are the easing library; value.go is the property/value
// algebra; keyframes.go and stagger.go are the two sampling helpers built
// on top of it; runtime.go is the per-animation state machine; timeline.go
// composes animations; manager.go schedules them; performance.go is the
// optional batching/caching layer; api.go and glue.go are the public
// builder surface and its bindings to pkg/reactive.
package animation
