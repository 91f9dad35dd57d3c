package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyframeSampleExactAtKeyframeTimes(t *testing.T) {
	track := &KeyframeTrack{
		Name: "opacity",
		Keyframes: []Keyframe{
			{Time: 0, Value: OpacityProperty{From: 0, To: 0}},
			{Time: 0.5, Value: OpacityProperty{From: 0, To: 0.5}},
			{Time: 1, Value: OpacityProperty{From: 0, To: 1}},
		},
	}
	seq := NewKeyframeSequence()
	seq.AddTrack(track)

	for _, tc := range []struct {
		t    float64
		want float64
	}{
		{0, 0}, {0.5, 0.5}, {1, 1},
	} {
		got := seq.Sample(tc.t)["opacity"]
		assert.InDelta(t, tc.want, got.Scalar, 1e-9)
	}
}

func TestKeyframeSingleKeyframe(t *testing.T) {
	track := &KeyframeTrack{
		Name:      "x",
		Keyframes: []Keyframe{{Time: 0.3, Value: OpacityProperty{From: 0, To: 42}}},
	}
	seq := NewKeyframeSequence()
	seq.AddTrack(track)
	got := seq.Sample(0.9)["x"]
	assert.Equal(t, 42.0, got.Scalar)
}

func TestKeyframeBoundaries(t *testing.T) {
	track := &KeyframeTrack{
		Name: "x",
		Keyframes: []Keyframe{
			{Time: 0.2, Value: OpacityProperty{From: 0, To: 10}},
			{Time: 0.8, Value: OpacityProperty{From: 0, To: 20}},
		},
	}
	seq := NewKeyframeSequence()
	seq.AddTrack(track)
	assert.Equal(t, 10.0, seq.Sample(0.0)["x"].Scalar)
	assert.Equal(t, 20.0, seq.Sample(1.0)["x"].Scalar)
}

func TestKeyframeZeroTracksIsNoOp(t *testing.T) {
	seq := NewKeyframeSequence()
	samples := seq.Sample(0.5)
	assert.Empty(t, samples)
}

func TestKeyframeDestinationEasingGovernsSegment(t *testing.T) {
	track := &KeyframeTrack{
		Name: "x",
		Keyframes: []Keyframe{
			{Time: 0, Value: OpacityProperty{From: 0, To: 0}},
			{Time: 1, Value: OpacityProperty{From: 0, To: 1}, Easing: Steps(2, false)},
		},
	}
	seq := NewKeyframeSequence()
	seq.AddTrack(track)
	got := seq.Sample(0.3)["x"]
	// Steps(2,false) at local=0.3 -> floor(0.3*2)/2 = 0
	assert.Equal(t, 0.0, got.Scalar)
	got = seq.Sample(0.6)["x"]
	assert.Equal(t, 0.5, got.Scalar)
}
