package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_VectorOps(t *testing.T) {
	p := NewPoint(1, 2)
	q := NewPoint(3, 5)

	assert.Equal(t, NewPoint(4, 7), p.Add(q))
	assert.Equal(t, NewPoint(-2, -3), p.Sub(q))
	assert.Equal(t, NewPoint(-1, -2), p.Negate())
	assert.Equal(t, NewPoint(4, 7), p.Translate(q))
	assert.Equal(t, float64(1*5-2*3), p.CrossProduct(q))
	assert.Equal(t, float64(1*3+2*5), p.DotProduct(q))
}

func TestPoint_Distance(t *testing.T) {
	p := NewPoint(0, 0)
	q := NewPoint(3, 4)

	assert.Equal(t, 25.0, p.DistanceSquaredToPoint(q))
	assert.Equal(t, 5.0, p.DistanceToPoint(q))
}

func TestPoint_Eq(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		expected bool
	}{
		"identical points":  {p: NewPoint(1, 1), q: NewPoint(1, 1), expected: true},
		"within default eps": {p: NewPoint(1, 1), q: NewPoint(1.000001, 1), expected: true},
		"far apart":          {p: NewPoint(1, 1), q: NewPoint(2, 2), expected: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.Eq(tc.q))
		})
	}
}

func TestPoint_Less(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		expected bool
	}{
		"higher y precedes lower y": {p: NewPoint(0, 5), q: NewPoint(0, 3), expected: true},
		"lower y follows higher y":  {p: NewPoint(0, 3), q: NewPoint(0, 5), expected: false},
		"tie broken by smaller x":   {p: NewPoint(1, 5), q: NewPoint(2, 5), expected: true},
		"equal points are not less": {p: NewPoint(1, 1), q: NewPoint(1, 1), expected: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.Less(tc.q))
		})
	}
}

func TestPoint_Compare(t *testing.T) {
	require.Equal(t, 0, NewPoint(1, 1).Compare(NewPoint(1, 1)))
	require.Equal(t, -1, NewPoint(0, 5).Compare(NewPoint(0, 3)))
	require.Equal(t, 1, NewPoint(0, 3).Compare(NewPoint(0, 5)))
}

func TestPoint_JSONRoundTrip(t *testing.T) {
	p := NewPoint(1.5, -2.5)

	data, err := p.MarshalJSON()
	require.NoError(t, err)

	var got Point
	require.NoError(t, got.UnmarshalJSON(data))
	assert.True(t, p.Eq(got))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1,2)", NewPoint(1, 2).String())
}
