package sweep

import (
	"github.com/bentley-ottmann/sweepline/geometry"
	"github.com/bentley-ottmann/sweepline/options"
	"github.com/bentley-ottmann/sweepline/orderedset"
)

// endpointGroup is a key point together with the segments associated with it:
// the segments having it as an upper endpoint (in U), a lower endpoint (in L),
// or an interior containment point (in C).
type endpointGroup struct {
	key      geometry.Point
	segments []geometry.Segment
}

// endpointMap is an ordered map from point to a list of segments, keyed in
// sweep order. U, L, and C are each one of these. A hash map is unsuitable
// here because epsilon equality rules out hashing without a quantized key;
// an ordered map keyed in sweep order is the natural substitute.
type endpointMap struct {
	set  *orderedset.OrderedSet[endpointGroup]
	opts []options.GeometryOptionsFunc
}

func newEndpointMap(opts ...options.GeometryOptionsFunc) *endpointMap {
	m := &endpointMap{opts: opts}
	m.set = orderedset.New(func(a, b endpointGroup) int {
		return a.key.Compare(b.key, opts...)
	})
	return m
}

// Upsert finds or creates the group for key and appends segment to its list.
// Duplicate segments within a group are permitted; they are absorbed later by
// the status structure's idempotent insert.
func (m *endpointMap) Upsert(key geometry.Point, segment geometry.Segment) {
	group, found := m.set.Search(endpointGroup{key: key})
	if !found {
		group = endpointGroup{key: key}
	}
	group.segments = append(group.segments, segment)
	m.set.Insert(group)
}

// Get returns the segments associated with key, or nil if key has no group.
func (m *endpointMap) Get(key geometry.Point) []geometry.Segment {
	group, found := m.set.Search(endpointGroup{key: key})
	if !found {
		return nil
	}
	return group.segments
}
