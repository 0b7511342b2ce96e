package geometry

import (
	"fmt"
	"math"

	"github.com/bentley-ottmann/sweepline/options"
)

// Segment represents a line segment defined by two endpoints. Segments are
// immutable once constructed; p1 and p2 are stored in the order supplied to
// NewSegment and are not reordered by upper/lower resolution.
type Segment struct {
	p1 Point
	p2 Point
}

// NewSegment creates a Segment from two endpoints.
func NewSegment(p1, p2 Point) Segment {
	return Segment{p1: p1, p2: p2}
}

// P1 returns the segment's first endpoint, as supplied to NewSegment.
func (s Segment) P1() Point {
	return s.p1
}

// P2 returns the segment's second endpoint, as supplied to NewSegment.
func (s Segment) P2() Point {
	return s.p2
}

// Slope returns (p2.y-p1.y)/(p2.x-p1.x). A vertical segment (p1.x == p2.x)
// returns math.NaN(); callers must special-case verticals rather than relying
// on NaN propagating correctly through comparisons.
func (s Segment) Slope() float64 {
	dx := s.p2.x - s.p1.x
	if dx == 0 {
		return math.NaN()
	}
	return (s.p2.y - s.p1.y) / dx
}

// IsVertical reports whether the segment's endpoints share an x-coordinate.
func (s Segment) IsVertical(opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)
	return math.Abs(s.p1.x-s.p2.x) < geoOpts.Epsilon
}

// IsHorizontal reports whether the segment's endpoints share a y-coordinate.
func (s Segment) IsHorizontal(opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)
	return math.Abs(s.p1.y-s.p2.y) < geoOpts.Epsilon
}

// IsDegenerate reports whether the segment's endpoints coincide within epsilon,
// i.e. the segment is really a single point.
func (s Segment) IsDegenerate(opts ...options.GeometryOptionsFunc) bool {
	return s.p1.Eq(s.p2, opts...)
}

// Upper returns the segment's upper endpoint: the one that precedes the other
// in sweep order (higher y, or equal y and smaller x).
func (s Segment) Upper(opts ...options.GeometryOptionsFunc) Point {
	if s.p1.Less(s.p2, opts...) {
		return s.p1
	}
	return s.p2
}

// Lower returns the segment's lower endpoint, the counterpart to Upper.
func (s Segment) Lower(opts ...options.GeometryOptionsFunc) Point {
	if s.p1.Less(s.p2, opts...) {
		return s.p2
	}
	return s.p1
}

// XAtHeight returns the x-coordinate at which the segment crosses horizontal
// line y = k. The segment is assumed to actually span k; callers (the status
// structure's comparator) are responsible for only querying segments known to
// cross the current sweep height.
//
// A horizontal segment (slope == 0) has no x that varies with k — every point
// on it shares the same y, so (k-p1.y)/slope would divide by zero. Rather than
// let that degrade to ±Inf, which would pin the segment to a permanent extreme
// regardless of its real x-range, it reports its leftmost x as a stable
// representative, the same way the vertical case reports a single x regardless
// of k.
func (s Segment) XAtHeight(k float64) float64 {
	if s.IsVertical() {
		return s.p1.x
	}
	if s.IsHorizontal() {
		return math.Min(s.p1.x, s.p2.x)
	}
	slope := s.Slope()
	// y = slope*(x - p1.x) + p1.y  =>  x = p1.x + (k - p1.y)/slope
	return s.p1.x + (k-s.p1.y)/slope
}

// Eq reports whether two segments share the same pair of endpoints, in either
// order, within the configured epsilon tolerance.
func (s Segment) Eq(other Segment, opts ...options.GeometryOptionsFunc) bool {
	same := s.p1.Eq(other.p1, opts...) && s.p2.Eq(other.p2, opts...)
	swapped := s.p1.Eq(other.p2, opts...) && s.p2.Eq(other.p1, opts...)
	return same || swapped
}

// String returns a string representation of the segment in the format
// "(x1,y1)-(x2,y2)".
func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.p1, s.p2)
}
