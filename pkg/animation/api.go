package animation

import (
	"strconv"
	"strings"
	"time"

	drifterrors "github.com/driftterm/driftterm/pkg/errors"
)

// PropertyValueKind tags a PropertyValue's variant.
type PropertyValueKind int

const (
	ValueSingle PropertyValueKind = iota
	ValueFromTo
	ValueArray
	ValueRelative
)

// PropertyValue is the builder-facing value sum type: Single(to),
// FromTo{from,to}, Array(values) (used by Keyframes-backed properties),
// Relative("+=N"|"-=N"). Single and Relative both need a "current value"
// to resolve against; resolution happens at Play() time, not at build time.
type PropertyValue struct {
	Kind     PropertyValueKind
	From, To float64
	Values   []float64
	Relative string
}

func Single(to float64) PropertyValue              { return PropertyValue{Kind: ValueSingle, To: to} }
func FromTo(from, to float64) PropertyValue        { return PropertyValue{Kind: ValueFromTo, From: from, To: to} }
func ArrayValue(values ...float64) PropertyValue   { return PropertyValue{Kind: ValueArray, Values: values} }
func Relative(expr string) PropertyValue           { return PropertyValue{Kind: ValueRelative, Relative: expr} }

// parseRelative parses "+=N" or "-=N" into a signed delta.
func parseRelative(expr string) (float64, error) {
	if len(expr) < 3 || (expr[0] != '+' && expr[0] != '-') || expr[1] != '=' {
		return 0, drifterrors.New("animation.parseRelative", drifterrors.KindInvalidConfig, errInvalidExpr(expr))
	}
	n, err := strconv.ParseFloat(expr[2:], 64)
	if err != nil {
		return 0, drifterrors.New("animation.parseRelative", drifterrors.KindInvalidConfig, err)
	}
	if expr[0] == '-' {
		n = -n
	}
	return n, nil
}

type invalidExprError struct{ expr string }

func (e *invalidExprError) Error() string { return "invalid relative expression: " + e.expr }
func errInvalidExpr(expr string) error    { return &invalidExprError{expr: expr} }

// resolveScalar turns a PropertyValue into concrete (from, to) floats,
// consulting current() only for Single (from defaults to the live value)
// and Relative (both from and to are derived from the live value).
func resolveScalar(pv PropertyValue, current func() float64) (from, to float64, err error) {
	switch pv.Kind {
	case ValueSingle:
		c := 0.0
		if current != nil {
			c = current()
		}
		return c, pv.To, nil
	case ValueFromTo:
		return pv.From, pv.To, nil
	case ValueRelative:
		c := 0.0
		if current != nil {
			c = current()
		}
		delta, err := parseRelative(pv.Relative)
		if err != nil {
			return 0, 0, err
		}
		return c, c + delta, nil
	case ValueArray:
		if len(pv.Values) == 0 {
			return 0, 0, nil
		}
		return pv.Values[0], pv.Values[len(pv.Values)-1], nil
	default:
		return 0, 0, nil
	}
}

// ColorValue mirrors PropertyValue for Color-typed properties.
type ColorValue struct {
	Kind     PropertyValueKind // ValueSingle or ValueFromTo only
	From, To Color
}

func SingleColor(to Color) ColorValue       { return ColorValue{Kind: ValueSingle, To: to} }
func FromToColor(from, to Color) ColorValue { return ColorValue{Kind: ValueFromTo, From: from, To: to} }

func resolveColor(cv ColorValue, current func() Color) (from, to Color) {
	if cv.Kind == ValueFromTo {
		return cv.From, cv.To
	}
	if current != nil {
		return current(), cv.To
	}
	return Color{}, cv.To
}

// DelayKind tags DelayValue's variant: a fixed duration, or a stagger
// configuration resolved per-target across the whole fan-out.
type DelayKind int

const (
	DelayFixed DelayKind = iota
	DelayStagger
)

// DelayValue is the builder-facing delay sum type: a fixed duration or a
// per-target stagger.
type DelayValue struct {
	Kind    DelayKind
	Fixed   time.Duration
	Stagger StaggerConfig
}

func FixedDelay(d time.Duration) DelayValue { return DelayValue{Kind: DelayFixed, Fixed: d} }
func StaggerDelayValue(cfg StaggerConfig) DelayValue {
	return DelayValue{Kind: DelayStagger, Stagger: cfg}
}

// StaggerDelay builds a StaggerConfig with Base set to baseMs. Any fields
// already set on opts (Origin, Direction, Range, ...) are preserved.
func StaggerDelay(baseMs float64, opts StaggerConfig) StaggerConfig {
	opts.Base = baseMs
	return opts
}

// Target is one fan-out recipient of an animate() call: an id for error
// reporting/child naming, the Publisher its samples are written to, and
// optional live-value getters used to resolve Single/Relative property
// values at Play() time. Unset getters resolve against the zero value.
type Target struct {
	ID            string
	Publisher     Publisher
	CurrentScalar func() float64
	CurrentColor  func() Color
}

// AnimateParams is the fixed, strict parameter object an Animate call
// takes. Go's struct typing already rejects unknown keys at compile time,
// so there is no separate runtime "unknown key" check to perform.
type AnimateParams struct {
	ID       string
	Duration time.Duration
	Delay    DelayValue
	Easing   Easing
	LoopMode LoopMode
	Count    int
	Reverse  bool
	Speed    float64
	AutoPlay bool
	AutoReverse bool

	Opacity     *PropertyValue
	TranslateX  *PropertyValue
	TranslateY  *PropertyValue
	Scale       *PropertyValue
	Rotate      *PropertyValue
	Color       *ColorValue
	Size        *SizeParam
	Position    *PositionParam
	Custom      map[string]PropertyValue
	CSS         map[string]CssParam
	Transform   *TransformProperty
	Keyframes   *KeyframeSequence
	KeyframeOrder []string

	Callbacks Callbacks
}

// SizeParam holds the two independent axes of a Size property.
type SizeParam struct{ Width, Height PropertyValue }

// PositionParam holds the two independent axes of a Position property.
type PositionParam struct{ X, Y PropertyValue }

// CssParam is a named CSS-like property's from/to pair.
type CssParam struct{ From, To CssValue }

// Animate compiles params into one Animation per target, fanning out
// across the target list. Unknown target ids are the caller's concern —
// Target already carries a resolved Publisher, so there is no id lookup
// to silently skip; a nil Publisher is simply not written to.
func Animate(targets []Target, params AnimateParams) ([]*Animation, error) {
	if params.Speed < 0 {
		return nil, drifterrors.New("animation.Animate", drifterrors.KindInvalidConfig, errInvalidExpr("speed"))
	}
	if params.LoopMode == LoopCount && params.Count < 1 {
		return nil, drifterrors.New("animation.Animate", drifterrors.KindInvalidConfig, errInvalidExpr("count"))
	}

	var delays []time.Duration
	switch params.Delay.Kind {
	case DelayStagger:
		resolved := params.Delay.Stagger.Resolve(len(targets))
		delays = make([]time.Duration, len(resolved))
		for i, ms := range resolved {
			delays[i] = time.Duration(ms * float64(time.Millisecond))
		}
	default:
		delays = make([]time.Duration, len(targets))
		for i := range delays {
			delays[i] = params.Delay.Fixed
		}
	}

	out := make([]*Animation, 0, len(targets))
	for i, target := range targets {
		cfg := AnimationConfig{
			Duration:    params.Duration,
			Easing:      params.Easing,
			Delay:       delays[i],
			LoopMode:    params.LoopMode,
			Count:       params.Count,
			Reverse:     params.Reverse,
			Speed:       params.Speed,
			AutoPlay:    false,
			AutoReverse: params.AutoReverse,
		}

		id := params.ID
		if id == "" {
			id = NewID()
		}
		if len(targets) > 1 {
			id = id + "#" + target.ID
		}

		anim := NewAnimation(id, nil, cfg)
		anim.Publisher = target.Publisher
		anim.Callbacks = params.Callbacks
		anim.Resolver = buildResolver(params, target)
		// Resolve once immediately so a non-autoplay animation still has a
		// sensible Property before the first Play().
		anim.Property = anim.Resolver()
		if params.AutoPlay {
			anim.Play()
		}
		out = append(out, anim)
	}
	return out, nil
}

// buildResolver closes over params+target and produces the AnimatedProperty
// that should be in effect at the start of each fresh Play(), so Relative
// and from-less Single values are resolved against the live value at that
// moment rather than whatever was live when the animation was built.
func buildResolver(params AnimateParams, target Target) func() AnimatedProperty {
	return func() AnimatedProperty {
		var props []AnimatedProperty

		if params.Opacity != nil {
			from, to, _ := resolveScalar(*params.Opacity, target.CurrentScalar)
			props = append(props, OpacityProperty{From: from, To: to})
		}
		if params.TranslateX != nil {
			from, to, _ := resolveScalar(*params.TranslateX, target.CurrentScalar)
			props = append(props, TransformProperty{Kind: TransformTranslateX, From: from, To: to})
		}
		if params.TranslateY != nil {
			from, to, _ := resolveScalar(*params.TranslateY, target.CurrentScalar)
			props = append(props, TransformProperty{Kind: TransformTranslateY, From: from, To: to})
		}
		if params.Scale != nil {
			from, to, _ := resolveScalar(*params.Scale, target.CurrentScalar)
			props = append(props, ScaleProperty{From: from, To: to})
		}
		if params.Rotate != nil {
			from, to, _ := resolveScalar(*params.Rotate, target.CurrentScalar)
			props = append(props, RotationProperty{FromDeg: from, ToDeg: to})
		}
		if params.Color != nil {
			from, to := resolveColor(*params.Color, target.CurrentColor)
			props = append(props, ColorProperty{From: from, To: to})
		}
		if params.Size != nil {
			fw, tw, _ := resolveScalar(params.Size.Width, target.CurrentScalar)
			fh, th, _ := resolveScalar(params.Size.Height, target.CurrentScalar)
			props = append(props, SizeProperty{FromW: fw, FromH: fh, ToW: tw, ToH: th})
		}
		if params.Position != nil {
			fx, tx, _ := resolveScalar(params.Position.X, target.CurrentScalar)
			fy, ty, _ := resolveScalar(params.Position.Y, target.CurrentScalar)
			props = append(props, PositionProperty{FromX: fx, FromY: fy, ToX: tx, ToY: ty})
		}
		for name, pv := range params.Custom {
			from, to, _ := resolveScalar(pv, target.CurrentScalar)
			props = append(props, CustomProperty{Name: name, From: from, To: to})
		}
		for name, cp := range params.CSS {
			props = append(props, CssProperty{Name: name, From: cp.From, To: cp.To})
		}
		if params.Transform != nil {
			props = append(props, *params.Transform)
		}
		if params.Keyframes != nil {
			props = append(props, KeyframesProperty{Sequence: params.Keyframes, Order: params.KeyframeOrder})
		}

		switch len(props) {
		case 0:
			return OpacityProperty{}
		case 1:
			return props[0]
		default:
			return MultipleProperty{Items: props}
		}
	}
}

// TimelineParams configures a timeline builder.
type TimelineParams struct {
	ID   string
	Mode TimelineMode
}

// TimelineBuilder accumulates children for an AnimationTimeline.
type TimelineBuilder struct {
	id       string
	mode     TimelineMode
	children []*TimelineChild
	prevEnd  time.Duration
}

// CreateTimeline starts a new builder. An empty params.ID is replaced with
// a generated id at Build() time.
func CreateTimeline(params TimelineParams) *TimelineBuilder {
	return &TimelineBuilder{id: params.ID, mode: params.Mode}
}

// Add compiles params into animations for targets and appends them as
// timeline children. position is an optional label ("+=200", "-=100",
// "50%", "1.5s") compiled immediately into a plain delay from the
// timeline's start, resolved against the latest end time among the
// children added so far — the runtime AnimationTimeline itself
// stores only plain delays, with no label concept of its own.
func (b *TimelineBuilder) Add(targets []Target, params AnimateParams, position string) (*TimelineBuilder, error) {
	anims, err := Animate(targets, params)
	if err != nil {
		return b, err
	}
	delay, err := parseTimelinePosition(position, b.prevEnd)
	if err != nil {
		return b, err
	}
	for _, a := range anims {
		b.children = append(b.children, &TimelineChild{Animation: a, Delay: delay})
	}
	if end := delay + params.Duration; end > b.prevEnd {
		b.prevEnd = end
	}
	return b, nil
}

// Build finalizes the timeline.
func (b *TimelineBuilder) Build() *AnimationTimeline {
	id := b.id
	if id == "" {
		id = NewID()
	}
	return NewTimeline(id, b.mode, b.children)
}

// parseTimelinePosition compiles a position label into an absolute delay
// from the timeline's start, given prevEnd (the latest end time among the
// children added so far). Empty label means "immediately after prevEnd",
// matching sequential composition's default chaining.
//
// "N%" is interpreted here as a percentage of prevEnd, since the overall
// timeline duration isn't known until every child has been added.
func parseTimelinePosition(label string, prevEnd time.Duration) (time.Duration, error) {
	if label == "" {
		return prevEnd, nil
	}
	if len(label) >= 2 && (label[0] == '+' || label[0] == '-') && label[1] == '=' {
		rest := label[2:]
		d, err := parseDurationLabel(rest)
		if err != nil {
			return 0, err
		}
		if label[0] == '-' {
			d = -d
		}
		result := prevEnd + d
		if result < 0 {
			result = 0
		}
		return result, nil
	}
	if strings.HasSuffix(label, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(label, "%"), 64)
		if err != nil {
			return 0, drifterrors.New("animation.parseTimelinePosition", drifterrors.KindInvalidConfig, err)
		}
		return time.Duration(float64(prevEnd) * pct / 100), nil
	}
	return parseDurationLabel(label)
}

// parseDurationLabel parses a bare number (milliseconds) or a number with
// an "s" suffix (seconds), e.g. "200" -> 200ms, "1.5s" -> 1500ms.
func parseDurationLabel(s string) (time.Duration, error) {
	if strings.HasSuffix(s, "s") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
		if err != nil {
			return 0, drifterrors.New("animation.parseDurationLabel", drifterrors.KindInvalidConfig, err)
		}
		return time.Duration(n * float64(time.Second)), nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, drifterrors.New("animation.parseDurationLabel", drifterrors.KindInvalidConfig, err)
	}
	return time.Duration(n * float64(time.Millisecond)), nil
}
