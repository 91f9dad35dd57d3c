package animation

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA sample in byte space. Interpolation happens
// component-wise in this space: no perceptual color space conversion, since
// terminal color output is already byte-quantized so a perceptual blend
// would buy nothing observable.
type Color struct {
	R, G, B, A uint8
}

// ColorFromHex parses a "#rrggbb" or "#rrggbbaa" string, delegating to
// go-colorful's hex parser (grounded in gechr-clog's gradient stops, which
// construct their palette the same way) rather than hand-rolling one.
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, err
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 255}, nil
}

func lerpColor(from, to Color, t float64) Color {
	lerp := func(a, b uint8) uint8 {
		v := float64(a) + (float64(b)-float64(a))*t
		return clampByte(v)
	}
	return Color{R: lerp(from.R, to.R), G: lerp(from.G, to.G), B: lerp(from.B, to.B), A: lerp(from.A, to.A)}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// TransformMatrix is a 2x3 affine matrix: {a,b,c,d,e,f} maps
// (x,y) -> (a*x + c*y + e, b*x + d*y + f).
type TransformMatrix struct {
	A, B, C, D, E, F float64
}

// IdentityMatrix is the no-op transform.
var IdentityMatrix = TransformMatrix{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}

// TransformKind tags which affine family a TransformProperty animates.
type TransformKind int

const (
	TransformTranslateX TransformKind = iota
	TransformTranslateY
	TransformTranslate2
	TransformScale
	TransformScaleX
	TransformScaleY
	TransformRotate
	TransformSkew
	TransformSkewX
	TransformSkewY
	TransformMatrixKind
)

// ValueKind tags which variant an AnimatedValue carries. Go has no sum
// types, so AnimatedProperty/AnimatedValue follow the same pattern as
// Easing: a small set of constructors plus a discriminant for callers
// that need to branch on which field is populated.
type ValueKind int

const (
	KindOpacity ValueKind = iota
	KindPosition
	KindSize
	KindColor
	KindScale
	KindRotation
	KindCustom
	KindMultiple
	KindProperty
	KindTransform
	KindCss
	KindPropertySet
	KindKeyframes
	KindEmpty
)

// AnimatedValue is one sampled frame of an AnimatedProperty. Only the
// fields relevant to Kind are populated; the rest are zero.
type AnimatedValue struct {
	Kind      ValueKind
	Name      string
	Scalar    float64
	PosX      int16
	PosY      int16
	SizeW     uint16
	SizeH     uint16
	Color     Color
	Transform TransformMatrix
	Css       CssValue
	Items     []AnimatedValue
}

// AnimatedProperty is the animatable-value sum type every animation target
// resolves to. Each variant is a concrete struct implementing Interpolate;
// t is assumed already eased.
type AnimatedProperty interface {
	Interpolate(t float64) AnimatedValue
}

// --- Opacity ---

type OpacityProperty struct{ From, To float64 }

func (p OpacityProperty) Interpolate(t float64) AnimatedValue {
	return AnimatedValue{Kind: KindOpacity, Scalar: p.From + (p.To-p.From)*t}
}

// --- Position ---

// PositionProperty interpolates in float64 and truncates to int16 at
// sample time: truncation toward zero, no saturation, since the domain is
// caller-bounded.
type PositionProperty struct{ FromX, FromY, ToX, ToY float64 }

func (p PositionProperty) Interpolate(t float64) AnimatedValue {
	x := p.FromX + (p.ToX-p.FromX)*t
	y := p.FromY + (p.ToY-p.FromY)*t
	return AnimatedValue{Kind: KindPosition, PosX: int16(x), PosY: int16(y)}
}

// --- Size ---

// SizeProperty truncates to uint16 at sample time. Negative intermediate
// values are not expected for a size channel; if
// from/to are themselves non-negative the truncated cast is always valid.
type SizeProperty struct{ FromW, FromH, ToW, ToH float64 }

func (p SizeProperty) Interpolate(t float64) AnimatedValue {
	w := p.FromW + (p.ToW-p.FromW)*t
	h := p.FromH + (p.ToH-p.FromH)*t
	return AnimatedValue{Kind: KindSize, SizeW: uint16(w), SizeH: uint16(h)}
}

// --- Color ---

type ColorProperty struct{ From, To Color }

func (p ColorProperty) Interpolate(t float64) AnimatedValue {
	return AnimatedValue{Kind: KindColor, Color: lerpColor(p.From, p.To, t)}
}

// --- Scale ---

type ScaleProperty struct{ From, To float64 }

func (p ScaleProperty) Interpolate(t float64) AnimatedValue {
	return AnimatedValue{Kind: KindScale, Scalar: p.From + (p.To-p.From)*t}
}

// --- Rotation ---

type RotationProperty struct{ FromDeg, ToDeg float64 }

func (p RotationProperty) Interpolate(t float64) AnimatedValue {
	return AnimatedValue{Kind: KindRotation, Scalar: p.FromDeg + (p.ToDeg-p.FromDeg)*t}
}

// --- Custom ---

type CustomProperty struct {
	Name     string
	From, To float64
}

func (p CustomProperty) Interpolate(t float64) AnimatedValue {
	return AnimatedValue{Kind: KindCustom, Name: p.Name, Scalar: p.From + (p.To-p.From)*t}
}

// --- Property (named scalar) ---

type NamedProperty struct {
	Name     string
	From, To float64
}

func (p NamedProperty) Interpolate(t float64) AnimatedValue {
	return AnimatedValue{Kind: KindProperty, Name: p.Name, Scalar: p.From + (p.To-p.From)*t}
}

// --- Multiple ---

type MultipleProperty struct{ Items []AnimatedProperty }

func (p MultipleProperty) Interpolate(t float64) AnimatedValue {
	if len(p.Items) == 0 {
		return AnimatedValue{Kind: KindMultiple}
	}
	items := make([]AnimatedValue, len(p.Items))
	for i, child := range p.Items {
		items[i] = child.Interpolate(t)
	}
	return AnimatedValue{Kind: KindMultiple, Items: items}
}

// --- PropertySet ---

// PropertySetItem lets a child define a sub-window [Offset, 1] of the
// parent's overall progress, with its own optional easing applied to the
// re-normalized local progress.
type PropertySetItem struct {
	Property AnimatedProperty
	Offset   float64 // in [0,1]
	Easing   Easing  // optional; nil means no re-easing
}

type PropertySetProperty struct{ Items []PropertySetItem }

func (p PropertySetProperty) Interpolate(t float64) AnimatedValue {
	if len(p.Items) == 0 {
		return AnimatedValue{Kind: KindPropertySet}
	}
	items := make([]AnimatedValue, len(p.Items))
	for i, item := range p.Items {
		denom := 1 - item.Offset
		local := 1.0
		if denom > 0 {
			local = clampUnit((t - item.Offset) / denom)
		}
		if item.Easing != nil {
			local = item.Easing.Apply(local)
		}
		items[i] = item.Property.Interpolate(local)
	}
	return AnimatedValue{Kind: KindPropertySet, Items: items}
}

// --- Transform ---

type TransformProperty struct {
	Kind                 TransformKind
	From, To             float64       // scalar forms
	FromMatrix, ToMatrix TransformMatrix // TransformMatrixKind only
}

func (p TransformProperty) Interpolate(t float64) AnimatedValue {
	v := p.From + (p.To-p.From)*t
	var m TransformMatrix
	switch p.Kind {
	case TransformTranslateX:
		m = TransformMatrix{A: 1, B: 0, C: 0, D: 1, E: v, F: 0}
	case TransformTranslateY:
		m = TransformMatrix{A: 1, B: 0, C: 0, D: 1, E: 0, F: v}
	case TransformTranslate2:
		// From/To encode only one axis; callers animating both axes
		// independently should use two TransformProperty values and
		// compose, or Multiple.
		m = TransformMatrix{A: 1, B: 0, C: 0, D: 1, E: v, F: v}
	case TransformScale:
		m = TransformMatrix{A: v, B: 0, C: 0, D: v, E: 0, F: 0}
	case TransformScaleX:
		m = TransformMatrix{A: v, B: 0, C: 0, D: 1, E: 0, F: 0}
	case TransformScaleY:
		m = TransformMatrix{A: 1, B: 0, C: 0, D: v, E: 0, F: 0}
	case TransformRotate:
		rad := v * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		m = TransformMatrix{A: cos, B: sin, C: -sin, D: cos, E: 0, F: 0}
	case TransformSkew:
		tan := math.Tan(v * math.Pi / 180)
		m = TransformMatrix{A: 1, B: tan, C: tan, D: 1, E: 0, F: 0}
	case TransformSkewX:
		tan := math.Tan(v * math.Pi / 180)
		m = TransformMatrix{A: 1, B: 0, C: tan, D: 1, E: 0, F: 0}
	case TransformSkewY:
		tan := math.Tan(v * math.Pi / 180)
		m = TransformMatrix{A: 1, B: tan, C: 0, D: 1, E: 0, F: 0}
	case TransformMatrixKind:
		// Component-wise linear interpolation between two matrices.
		// Not a polar decomposition: large-angle rotations interpolated
		// this way can visibly shear. Intentional tradeoff for simplicity.
		m = TransformMatrix{
			A: p.FromMatrix.A + (p.ToMatrix.A-p.FromMatrix.A)*t,
			B: p.FromMatrix.B + (p.ToMatrix.B-p.FromMatrix.B)*t,
			C: p.FromMatrix.C + (p.ToMatrix.C-p.FromMatrix.C)*t,
			D: p.FromMatrix.D + (p.ToMatrix.D-p.FromMatrix.D)*t,
			E: p.FromMatrix.E + (p.ToMatrix.E-p.FromMatrix.E)*t,
			F: p.FromMatrix.F + (p.ToMatrix.F-p.FromMatrix.F)*t,
		}
	}
	return AnimatedValue{Kind: KindTransform, Transform: m}
}

// --- CssValue / CssProperty ---

type CssUnit int

const (
	CssNumber CssUnit = iota
	CssPercentage
	CssPixels
	CssEm
	CssRem
	CssViewportWidth
	CssViewportHeight
	CssColorUnit
	CssString
)

// CssValue is the tagged union of values a CSS-like property can hold.
type CssValue struct {
	Unit   CssUnit
	Number float64
	Color  Color
	Str    string
}

type CssProperty struct {
	Name     string
	From, To CssValue
}

func (p CssProperty) Interpolate(t float64) AnimatedValue {
	return AnimatedValue{Kind: KindCss, Name: p.Name, Css: interpolateCss(p.From, p.To, t)}
}

// interpolateCss implements snap semantics: same-unit numeric values
// interpolate with the unit preserved; mismatched units
// snap (t<0.5 -> from, t>=0.5 -> to, no conversion attempted); colors
// interpolate channel-wise; strings always snap.
func interpolateCss(from, to CssValue, t float64) CssValue {
	if from.Unit == CssColorUnit && to.Unit == CssColorUnit {
		return CssValue{Unit: CssColorUnit, Color: lerpColor(from.Color, to.Color, t)}
	}
	if from.Unit == CssString || to.Unit == CssString {
		return snapCss(from, to, t)
	}
	if from.Unit != to.Unit {
		return snapCss(from, to, t)
	}
	return CssValue{Unit: from.Unit, Number: from.Number + (to.Number-from.Number)*t}
}

func snapCss(from, to CssValue, t float64) CssValue {
	if t < 0.5 {
		return from
	}
	return to
}
