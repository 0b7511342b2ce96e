package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientation(t *testing.T) {
	tests := map[string]struct {
		p, q, r  Point
		expected OrientationType
	}{
		"collinear horizontal": {
			p: NewPoint(0, 0), q: NewPoint(1, 0), r: NewPoint(2, 0),
			expected: Collinear,
		},
		"collinear vertical": {
			p: NewPoint(0, 0), q: NewPoint(0, 1), r: NewPoint(0, 2),
			expected: Collinear,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Orientation(tc.p, tc.q, tc.r))
		})
	}
}

func TestOrientation_Turns(t *testing.T) {
	p, q := NewPoint(0, 0), NewPoint(1, 1)

	right := Orientation(p, q, NewPoint(2, 0))
	left := Orientation(p, q, NewPoint(0, 2))

	assert.NotEqual(t, left, right)
	assert.NotEqual(t, Collinear, left)
	assert.NotEqual(t, Collinear, right)
}

func TestOrientationType_String(t *testing.T) {
	assert.Equal(t, "Collinear", Collinear.String())
	assert.Equal(t, "Clockwise", Clockwise.String())
	assert.Equal(t, "CounterClockwise", CounterClockwise.String())
	assert.Panics(t, func() { _ = OrientationType(99).String() })
}

func TestOnSegment(t *testing.T) {
	p, r := NewPoint(0, 0), NewPoint(10, 10)

	assert.True(t, OnSegment(p, NewPoint(5, 5), r))
	assert.False(t, OnSegment(p, NewPoint(11, 11), r))
}
