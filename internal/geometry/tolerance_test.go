package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	eval := NewEvaluator()
	target := Rect{X: 0, Y: 0, Width: 960, Height: 1080}

	tests := []struct {
		name       string
		actual     State
		position   bool
		size       bool
		constraint bool
	}{
		{
			name:     "exact match",
			actual:   State{Position: Point{0, 0}, Size: Size{960, 1080}},
			position: true,
			size:     true,
		},
		{
			name:     "within tolerance",
			actual:   State{Position: Point{9, -9}, Size: Size{952, 1085}},
			position: true,
			size:     true,
		},
		{
			name:     "position off by tolerance",
			actual:   State{Position: Point{10, 0}, Size: Size{960, 1080}},
			position: false,
			size:     true,
		},
		{
			name:       "oversized width is a floor and counts as matched",
			actual:     State{Position: Point{0, 0}, Size: Size{1100, 1080}},
			position:   true,
			size:       true,
			constraint: true,
		},
		{
			name:     "undersized is never matched",
			actual:   State{Position: Point{0, 0}, Size: Size{910, 1080}},
			position: true,
			size:     false,
		},
		{
			name:       "floor on one axis does not excuse deficit on the other",
			actual:     State{Position: Point{0, 0}, Size: Size{1100, 1000}},
			position:   true,
			size:       false,
			constraint: true,
		},
		{
			name:     "zero-valued probe snapshot is unmatched",
			actual:   State{},
			position: false,
			size:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := eval.Classify(target, tt.actual)
			assert.Equal(t, tt.position, cls.PositionMatched, "position")
			assert.Equal(t, tt.size, cls.SizeMatched, "size")
			assert.Equal(t, tt.constraint, cls.ConstraintDetected, "constraint")
			assert.Equal(t, tt.position && tt.size, cls.Matched())
		})
	}
}

func TestClassifySlackBoundary(t *testing.T) {
	eval := NewEvaluator()
	target := Rect{Width: 300, Height: 300}

	// Excess within slack is not a constraint; beyond slack it is.
	within := eval.Classify(target, State{Size: Size{Width: 304, Height: 300}})
	assert.False(t, within.ConstraintDetected)

	beyond := eval.Classify(target, State{Size: Size{Width: 306, Height: 300}})
	assert.True(t, beyond.ConstraintDetected)
}

func TestRectValidate(t *testing.T) {
	assert.NoError(t, Rect{Width: 100, Height: 100}.Validate())
	assert.NoError(t, Rect{X: -500, Y: -500}.Validate())
	assert.Error(t, Rect{Width: -1, Height: 100}.Validate())
	assert.Error(t, Rect{Width: 100, Height: -0.5}.Validate())
}
