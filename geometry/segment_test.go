package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment_Slope(t *testing.T) {
	diag := NewSegment(NewPoint(0, 0), NewPoint(2, 4))
	assert.Equal(t, 2.0, diag.Slope())

	vertical := NewSegment(NewPoint(1, 0), NewPoint(1, 5))
	assert.True(t, math.IsNaN(vertical.Slope()))
	assert.True(t, vertical.IsVertical())
}

func TestSegment_UpperLower(t *testing.T) {
	s := NewSegment(NewPoint(0, 0), NewPoint(5, 5))

	assert.Equal(t, NewPoint(5, 5), s.Upper())
	assert.Equal(t, NewPoint(0, 0), s.Lower())
}

func TestSegment_XAtHeight(t *testing.T) {
	s := NewSegment(NewPoint(0, 0), NewPoint(10, 10))
	assert.InDelta(t, 5.0, s.XAtHeight(5), 1e-9)

	vertical := NewSegment(NewPoint(3, 0), NewPoint(3, 10))
	assert.Equal(t, 3.0, vertical.XAtHeight(5))
}

func TestSegment_IsDegenerate(t *testing.T) {
	assert.True(t, NewSegment(NewPoint(1, 1), NewPoint(1, 1)).IsDegenerate())
	assert.False(t, NewSegment(NewPoint(1, 1), NewPoint(1, 2)).IsDegenerate())
}

func TestSegment_Eq(t *testing.T) {
	a := NewSegment(NewPoint(0, 0), NewPoint(1, 1))
	b := NewSegment(NewPoint(1, 1), NewPoint(0, 0))
	c := NewSegment(NewPoint(0, 0), NewPoint(2, 2))

	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
}
