package geometry

import (
	"fmt"
	"math"

	"github.com/bentley-ottmann/sweepline/options"
)

// OrientationType classifies the turn formed by three ordered points.
type OrientationType uint8

const (
	// Collinear indicates that p, q, and r lie on a straight line.
	Collinear OrientationType = iota
	// Clockwise indicates that p, q, r make a clockwise turn.
	Clockwise
	// CounterClockwise indicates that p, q, r make a counterclockwise turn.
	CounterClockwise
)

// String returns a human-readable name for the orientation.
func (o OrientationType) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		panic(fmt.Errorf("unsupported orientation type: %d", o))
	}
}

// Orientation determines whether p, q, r form a clockwise turn, a counterclockwise
// turn, or are collinear.
//
// It computes (q.y-p.y)(r.x-q.x) - (q.x-p.x)(r.y-q.y) and classifies the result as
// collinear when its absolute value is within the configured epsilon of zero.
func Orientation(p, q, r Point, opts ...options.GeometryOptionsFunc) OrientationType {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)

	val := (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)

	if math.Abs(val) < geoOpts.Epsilon {
		return Collinear
	}
	if val > 0 {
		return Clockwise
	}
	return CounterClockwise
}

// OnSegment reports whether q lies within the axis-aligned bounding box of p and r,
// given that p, q, r are already known to be collinear.
func OnSegment(p, q, r Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)

	return q.x <= math.Max(p.x, r.x)+geoOpts.Epsilon &&
		q.x >= math.Min(p.x, r.x)-geoOpts.Epsilon &&
		q.y <= math.Max(p.y, r.y)+geoOpts.Epsilon &&
		q.y >= math.Min(p.y, r.y)-geoOpts.Epsilon
}
