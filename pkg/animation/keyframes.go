package animation

import "sort"

// Keyframe is one (time, value, optional easing) point within a track.
// Easing, when set, governs the segment ending at this keyframe: the
// destination keyframe's easing governs the segment leading into it.
type Keyframe struct {
	Time   float64
	Value  AnimatedProperty
	Easing Easing // nil uses the track's DefaultEasing
}

// KeyframeTrack is a single named property's sorted keyframe list. Times
// must be unique and strictly increasing; KeyframeSequence.AddTrack sorts
// but does not deduplicate, and nothing rejects duplicate times — which of
// several keyframes sharing a time bounds a segment is not defined.
type KeyframeTrack struct {
	Name      string
	Keyframes []Keyframe
	// DefaultEasing is used for segments whose destination keyframe has no
	// Easing of its own; nil means Linear.
	DefaultEasing Easing
}

// KeyframeSequence maps property name -> track, and samples every track
// together for a single whole-animation normalized time t.
type KeyframeSequence struct {
	Tracks map[string]*KeyframeTrack
}

// NewKeyframeSequence builds an empty sequence ready for AddTrack.
func NewKeyframeSequence() *KeyframeSequence {
	return &KeyframeSequence{Tracks: make(map[string]*KeyframeTrack)}
}

// AddTrack registers track, sorting its keyframes by time.
func (s *KeyframeSequence) AddTrack(track *KeyframeTrack) {
	sort.Slice(track.Keyframes, func(i, j int) bool {
		return track.Keyframes[i].Time < track.Keyframes[j].Time
	})
	s.Tracks[track.Name] = track
}

// Sample returns one AnimatedValue per track for whole-animation normalized
// time t, via a binary-search-then-interpolate lookup per track.
func (s *KeyframeSequence) Sample(t float64) map[string]AnimatedValue {
	out := make(map[string]AnimatedValue, len(s.Tracks))
	for name, track := range s.Tracks {
		out[name] = track.sample(t)
	}
	return out
}

func (track *KeyframeTrack) sample(t float64) AnimatedValue {
	n := len(track.Keyframes)
	switch n {
	case 0:
		return AnimatedValue{Kind: KindEmpty}
	case 1:
		return track.Keyframes[0].Value.Interpolate(1)
	}

	first, last := track.Keyframes[0], track.Keyframes[n-1]
	if t <= first.Time {
		return first.Value.Interpolate(1)
	}
	if t >= last.Time {
		return last.Value.Interpolate(1)
	}

	// Binary search for the segment [k_i, k_{i+1}] containing t: find the
	// first keyframe whose time is >= t. An exact hit yields that
	// keyframe's own value; otherwise step back one.
	idx := sort.Search(n, func(i int) bool { return track.Keyframes[i].Time >= t })
	if track.Keyframes[idx].Time == t {
		return track.Keyframes[idx].Value.Interpolate(1)
	}
	k0 := track.Keyframes[idx-1]
	k1 := track.Keyframes[idx]

	span := k1.Time - k0.Time
	var local float64
	if span <= 0 {
		local = 1
	} else {
		local = clampUnit((t - k0.Time) / span)
	}

	easing := k1.Easing
	if easing == nil {
		easing = track.DefaultEasing
	}
	if easing == nil {
		easing = Linear
	}
	eased := easing.Apply(local)
	return k1.Value.Interpolate(eased)
}

// KeyframesProperty adapts a KeyframeSequence to the AnimatedProperty
// interface so it can appear wherever a single property is expected (e.g.
// nested in Multiple). Interpolate returns a KindKeyframes value whose
// Items holds the per-track samples in the order given by Order; callers
// that need named access should use Sequence.Sample directly instead.
type KeyframesProperty struct {
	Sequence *KeyframeSequence
	// Order fixes the iteration order of Items for deterministic output;
	// if empty, Items is omitted and only Sequence.Sample should be used.
	Order []string
}

func (p KeyframesProperty) Interpolate(t float64) AnimatedValue {
	if p.Sequence == nil || len(p.Order) == 0 {
		return AnimatedValue{Kind: KindKeyframes}
	}
	samples := p.Sequence.Sample(t)
	items := make([]AnimatedValue, 0, len(p.Order))
	for _, name := range p.Order {
		if v, ok := samples[name]; ok {
			items = append(items, v)
		}
	}
	return AnimatedValue{Kind: KindKeyframes, Items: items}
}
