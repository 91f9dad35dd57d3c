package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpacityInterpolation(t *testing.T) {
	p := OpacityProperty{From: 0, To: 1}
	assert.Equal(t, 0.0, p.Interpolate(0).Scalar)
	assert.Equal(t, 0.75, p.Interpolate(0.75).Scalar)
	assert.Equal(t, 1.0, p.Interpolate(1).Scalar)
}

func TestPositionTruncatesTowardZero(t *testing.T) {
	p := PositionProperty{FromX: 0, FromY: 0, ToX: 10, ToY: -10}
	v := p.Interpolate(0.37)
	// 10*0.37 = 3.7 -> truncates to 3; -10*0.37 = -3.7 -> truncates to -3.
	assert.Equal(t, int16(3), v.PosX)
	assert.Equal(t, int16(-3), v.PosY)
}

func TestSizeTruncates(t *testing.T) {
	p := SizeProperty{FromW: 0, FromH: 0, ToW: 9, ToH: 9}
	v := p.Interpolate(1.0 / 3)
	assert.Equal(t, uint16(3), v.SizeW)
}

func TestColorLerpByteSpace(t *testing.T) {
	p := ColorProperty{From: Color{R: 0, G: 0, B: 0, A: 255}, To: Color{R: 255, G: 255, B: 255, A: 255}}
	v := p.Interpolate(0.5)
	assert.InDelta(t, 127, int(v.Color.R), 1)
}

func TestMultipleEmptyIsNotError(t *testing.T) {
	m := MultipleProperty{}
	v := m.Interpolate(0.5)
	assert.Equal(t, KindMultiple, v.Kind)
	assert.Empty(t, v.Items)
}

func TestPropertySetSubWindow(t *testing.T) {
	set := PropertySetProperty{Items: []PropertySetItem{
		{Property: OpacityProperty{From: 0, To: 1}, Offset: 0},
		{Property: OpacityProperty{From: 0, To: 1}, Offset: 0.5},
	}}
	v := set.Interpolate(0.5)
	assert.Equal(t, 0.5, v.Items[0].Scalar)
	assert.Equal(t, 0.0, v.Items[1].Scalar)

	v = set.Interpolate(0.75)
	assert.Equal(t, 0.5, v.Items[1].Scalar)
}

func TestTransformTranslateX(t *testing.T) {
	p := TransformProperty{Kind: TransformTranslateX, From: 0, To: 100}
	v := p.Interpolate(0.5)
	assert.Equal(t, 50.0, v.Transform.E)
	assert.Equal(t, 1.0, v.Transform.A)
}

func TestTransformRotateComposesSinCos(t *testing.T) {
	p := TransformProperty{Kind: TransformRotate, From: 0, To: 90}
	v := p.Interpolate(1)
	assert.InDelta(t, 0, v.Transform.A, 1e-9)
	assert.InDelta(t, 1, v.Transform.B, 1e-9)
}

func TestTransformMatrixComponentWise(t *testing.T) {
	p := TransformProperty{
		Kind:       TransformMatrixKind,
		FromMatrix: IdentityMatrix,
		ToMatrix:   TransformMatrix{A: 2, B: 0, C: 0, D: 2, E: 10, F: 10},
	}
	v := p.Interpolate(0.5)
	assert.Equal(t, 1.5, v.Transform.A)
	assert.Equal(t, 5.0, v.Transform.E)
}

func TestCssSameUnitInterpolates(t *testing.T) {
	from := CssValue{Unit: CssPixels, Number: 0}
	to := CssValue{Unit: CssPixels, Number: 100}
	got := interpolateCss(from, to, 0.5)
	assert.Equal(t, CssPixels, got.Unit)
	assert.Equal(t, 50.0, got.Number)
}

func TestCssMismatchedUnitsSnap(t *testing.T) {
	from := CssValue{Unit: CssPixels, Number: 0}
	to := CssValue{Unit: CssPercentage, Number: 100}
	assert.Equal(t, from, interpolateCss(from, to, 0.49))
	assert.Equal(t, to, interpolateCss(from, to, 0.5))
}

func TestCssStringSnaps(t *testing.T) {
	from := CssValue{Unit: CssString, Str: "solid"}
	to := CssValue{Unit: CssString, Str: "dashed"}
	assert.Equal(t, "solid", interpolateCss(from, to, 0.1).Str)
	assert.Equal(t, "dashed", interpolateCss(from, to, 0.9).Str)
}
