package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaggerSingleTargetIsZero(t *testing.T) {
	cfg := StaggerConfig{Base: 100, Origin: StaggerFirst}
	delays := cfg.Resolve(1)
	assert.Equal(t, []float64{0}, delays)
}

func TestStaggerNonNegative(t *testing.T) {
	cfg := StaggerConfig{Base: 100, Origin: StaggerCenter}
	for _, n := range []int{2, 3, 5, 8} {
		for _, d := range cfg.Resolve(n) {
			assert.GreaterOrEqual(t, d, 0.0)
		}
	}
}

func TestStaggerFirstDefaultFormula(t *testing.T) {
	// 5 targets, base=100ms, origin=First -> 0, 25, 50, 75, 100.
	cfg := StaggerConfig{Base: 100, Origin: StaggerFirst}
	delays := cfg.Resolve(5)
	assert.InDeltaSlice(t, []float64{0, 25, 50, 75, 100}, delays, 1e-9)
}

func TestStaggerCenterSymmetry(t *testing.T) {
	cfg := StaggerConfig{Base: 100, Origin: StaggerCenter}
	delays := cfg.Resolve(5)
	assert.InDelta(t, delays[0], delays[4], 1e-9)
	assert.InDelta(t, delays[1], delays[3], 1e-9)
	assert.Less(t, delays[2], delays[0])
}

func TestStaggerReverseMirrors(t *testing.T) {
	forward := StaggerConfig{Base: 100, Origin: StaggerFirst}.Resolve(5)
	reverse := StaggerConfig{Base: 100, Origin: StaggerFirst, Direction: StaggerReverse}.Resolve(5)
	for i := range forward {
		assert.InDelta(t, forward[i], reverse[len(reverse)-1-i], 1e-9)
	}
}

func TestStaggerLastOrigin(t *testing.T) {
	cfg := StaggerConfig{Base: 100, Origin: StaggerLast}
	delays := cfg.Resolve(3)
	assert.InDelta(t, 100, delays[0], 1e-9)
	assert.InDelta(t, 0, delays[2], 1e-9)
}

func TestStaggerRangeFormula(t *testing.T) {
	cfg := StaggerConfig{Base: 1, Origin: StaggerFirst, Range: &StaggerRange{Low: 10, High: 60}}
	delays := cfg.Resolve(3)
	assert.InDelta(t, 10, delays[0], 1e-9)
	assert.InDelta(t, 60, delays[2], 1e-9)
}

func TestStaggerPositionGrid(t *testing.T) {
	cfg := StaggerConfig{Base: 100, Origin: StaggerPosition, Grid: StaggerGrid{Cols: 3, Rows: 3}, X: 0, Y: 0}
	delays := cfg.Resolve(9)
	assert.Equal(t, 0.0, delays[0])
	assert.Greater(t, delays[8], delays[0])
}
