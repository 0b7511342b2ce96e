package sweep

import (
	"testing"

	"github.com/bentley-ottmann/sweepline/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue_PopOrder(t *testing.T) {
	q := newEventQueue()
	q.Insert(geometry.NewPoint(0, 0))
	q.Insert(geometry.NewPoint(5, 10))
	q.Insert(geometry.NewPoint(1, 10))

	// Higher y first; ties broken by smaller x.
	p, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, geometry.NewPoint(1, 10), p)

	p, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, geometry.NewPoint(5, 10), p)

	p, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, geometry.NewPoint(0, 0), p)

	assert.True(t, q.Empty())
}

func TestEventQueue_InsertIsIdempotent(t *testing.T) {
	q := newEventQueue()
	q.Insert(geometry.NewPoint(1, 1))
	q.Insert(geometry.NewPoint(1, 1))

	require.Equal(t, 1, q.set.Len())
}

func TestEventQueue_Top(t *testing.T) {
	q := newEventQueue()
	_, ok := q.Top()
	assert.False(t, ok)

	q.Insert(geometry.NewPoint(2, 2))
	top, ok := q.Top()
	require.True(t, ok)
	assert.Equal(t, geometry.NewPoint(2, 2), top)
	// Top does not remove.
	assert.False(t, q.Empty())
}
