package sweep

import (
	"github.com/bentley-ottmann/sweepline/geometry"
	"github.com/bentley-ottmann/sweepline/options"
	"github.com/bentley-ottmann/sweepline/orderedset"
)

// eventQueue is a min-ordered set of event points in sweep order, backed by
// orderedset.OrderedSet. The segments associated with each point live in the
// U, L, and C endpoint maps (endpointmap.go); the queue itself only tracks
// which points remain to be processed.
type eventQueue struct {
	set *orderedset.OrderedSet[geometry.Point]
}

func newEventQueue(opts ...options.GeometryOptionsFunc) *eventQueue {
	return &eventQueue{
		set: orderedset.New(func(a, b geometry.Point) int {
			return a.Compare(b, opts...)
		}),
	}
}

// Insert adds p to the queue. Inserting a point already present is a no-op.
func (q *eventQueue) Insert(p geometry.Point) {
	if _, found := q.set.Search(p); found {
		return
	}
	q.set.Insert(p)
}

// Top returns the smallest (next) point in the queue without removing it.
func (q *eventQueue) Top() (geometry.Point, bool) {
	return q.set.Min()
}

// Pop removes and returns the smallest point in the queue.
func (q *eventQueue) Pop() (geometry.Point, bool) {
	p, ok := q.set.Min()
	if !ok {
		return geometry.Point{}, false
	}
	q.set.Remove(p)
	return p, true
}

// Empty reports whether the queue has no pending events.
func (q *eventQueue) Empty() bool {
	return q.set.Len() == 0
}
