// Package geometry defines the geometric primitives shared across the sweep-line
// engine: points, line segments, orientation, and the intersection predicates
// that drive event discovery.
//
// # Overview
//
// The geometry package has no internal state of its own; every function and method
// here is pure. Floating-point comparisons throughout the package are epsilon-
// tolerant, defaulting to DefaultEpsilon and configurable via the functional
// options of the options package (options.WithEpsilon).
//
// # Key Features
//
//   - Point: a 2D coordinate with vector arithmetic (Add, Sub, Negate, Translate,
//     CrossProduct, DotProduct) and epsilon-aware equality and sweep ordering.
//   - Segment: two endpoints with derived Slope, upper/lower endpoint resolution,
//     and x-at-height evaluation used by the sweep status structure.
//   - Orientation, OnSegment, DoIntersect, Intersect: the predicates that underpin
//     the Bentley–Ottmann sweep.
package geometry

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/bentley-ottmann/sweepline/numeric"
	"github.com/bentley-ottmann/sweepline/options"
)

// Point represents a point in two-dimensional space with float64 coordinates.
type Point struct {
	x float64
	y float64
}

// NewPoint creates a new Point with the specified x and y coordinates.
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns both coordinates of the point.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Add returns the component-wise sum of two points treated as vectors.
func (p Point) Add(q Point) Point {
	return NewPoint(p.x+q.x, p.y+q.y)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return NewPoint(p.x-q.x, p.y-q.y)
}

// Negate returns a new Point with both coordinates negated.
func (p Point) Negate() Point {
	return NewPoint(-p.x, -p.y)
}

// Translate moves the point by a given displacement vector.
func (p Point) Translate(delta Point) Point {
	return NewPoint(p.x+delta.x, p.y+delta.y)
}

// CrossProduct returns the z-component of the 3D cross product of p and q,
// treating both as vectors from the origin. A positive result indicates a
// counterclockwise turn from p to q, negative indicates clockwise, and zero
// indicates collinearity.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DotProduct returns the dot product of p and q, treating both as vectors
// from the origin.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p and q,
// avoiding the cost of a square root when only comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := q.x-p.x, q.y-p.y
	return dx*dx + dy*dy
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq reports whether p and q are equal within the configured epsilon tolerance.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// Less reports whether p precedes q in sweep order: higher y first, then
// (on a y tie) smaller x first. This is the total order the event queue and
// the endpoint maps are keyed by.
func (p Point) Less(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)
	if !numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon) {
		return p.y > q.y
	}
	return numeric.FloatLessThan(p.x, q.x, geoOpts.Epsilon)
}

// Compare returns -1, 0, or 1 as p precedes, equals, or follows q in sweep order.
func (p Point) Compare(q Point, opts ...options.GeometryOptionsFunc) int {
	if p.Eq(q, opts...) {
		return 0
	}
	if p.Less(q, opts...) {
		return -1
	}
	return 1
}

// String returns a string representation of the point in the format "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.x, p.y)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}
