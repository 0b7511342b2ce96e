package geometry

import (
	"math"

	"github.com/bentley-ottmann/sweepline/numeric"
	"github.com/bentley-ottmann/sweepline/options"
)

// DoIntersect reports whether segments a and b intersect, including the
// collinear-overlap case. It uses the standard four-orientation test plus the
// OnSegment special cases for collinear endpoints.
func DoIntersect(a, b Segment, opts ...options.GeometryOptionsFunc) bool {
	p1, q1 := a.p1, a.p2
	p2, q2 := b.p1, b.p2

	o1 := Orientation(p1, q1, p2, opts...)
	o2 := Orientation(p1, q1, q2, opts...)
	o3 := Orientation(p2, q2, p1, opts...)
	o4 := Orientation(p2, q2, q1, opts...)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear special cases: an endpoint of one segment lies on the other.
	if o1 == Collinear && OnSegment(p1, p2, q1, opts...) {
		return true
	}
	if o2 == Collinear && OnSegment(p1, q2, q1, opts...) {
		return true
	}
	if o3 == Collinear && OnSegment(p2, p1, q2, opts...) {
		return true
	}
	if o4 == Collinear && OnSegment(p2, q1, q2, opts...) {
		return true
	}

	return false
}

// SameLine reports whether a and b lie on the same infinite line, i.e. all
// four endpoints are mutually collinear. Two segments can satisfy this while
// also satisfying DoIntersect without a single well-defined crossing point —
// the collinear-overlap degeneracy (see Intersect).
func SameLine(a, b Segment, opts ...options.GeometryOptionsFunc) bool {
	return Orientation(a.p1, a.p2, b.p1, opts...) == Collinear &&
		Orientation(a.p1, a.p2, b.p2, opts...) == Collinear
}

// Intersect computes the intersection point of the infinite lines carrying
// segments a and b using Cramer's rule. ok is false when the lines are
// parallel or collinear (the determinant is within epsilon of zero); callers
// must pair Intersect with DoIntersect to distinguish "lines don't meet" from
// "lines meet outside the segment bounds". Intersect never reports a single
// point for collinear overlapping segments, even though DoIntersect reports
// those as intersecting.
func Intersect(a, b Segment, opts ...options.GeometryOptionsFunc) (Point, bool) {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)

	dir1 := a.p2.Sub(a.p1)
	dir2 := b.p2.Sub(b.p1)

	denominator := dir1.CrossProduct(dir2)
	if math.Abs(denominator) < geoOpts.Epsilon {
		return Point{}, false
	}

	ac := b.p1.Sub(a.p1)
	t := ac.CrossProduct(dir2) / denominator

	x := numeric.SnapToEpsilon(a.p1.x+t*dir1.x, geoOpts.Epsilon)
	y := numeric.SnapToEpsilon(a.p1.y+t*dir1.y, geoOpts.Epsilon)

	return NewPoint(x, y), true
}
