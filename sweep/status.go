package sweep

import (
	"math"

	"github.com/bentley-ottmann/sweepline/geometry"
	"github.com/bentley-ottmann/sweepline/numeric"
	"github.com/bentley-ottmann/sweepline/options"
	"github.com/bentley-ottmann/sweepline/orderedset"
)

// status is the sweep-line status structure T: the set of segments currently
// crossing the sweep line, ordered by x-coordinate at the sweep line's current
// height k.
//
// k is held as a field on status rather than as module-level state, so the
// comparator closes over this struct instead of a process-wide mutable
// scalar. Callers must call SetHeight to reposition k between structurally
// consistent moments only — see engine.go's handleEvent, which always removes
// departing segments, updates k, then reinserts arriving segments.
type status struct {
	set  *orderedset.OrderedSet[geometry.Segment]
	k    float64
	opts []options.GeometryOptionsFunc
}

func newStatus(opts ...options.GeometryOptionsFunc) *status {
	s := &status{opts: opts}
	s.set = orderedset.New(func(a, b geometry.Segment) int {
		return s.compare(a, b)
	})
	return s
}

func (s *status) epsilon() float64 {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: geometry.DefaultEpsilon}, s.opts...)
	return geoOpts.Epsilon
}

// compare orders two segments by their x-coordinate at height k, breaking
// ties by slope so that horizontal and vertical segments sort consistently
// rather than comparing equal.
func (s *status) compare(a, b geometry.Segment) int {
	eps := s.epsilon()
	xa, xb := a.XAtHeight(s.k), b.XAtHeight(s.k)

	if !numeric.FloatEquals(xa, xb, eps) {
		if xa < xb {
			return -1
		}
		return 1
	}

	sa, sb := slopeForTieBreak(a), slopeForTieBreak(b)
	if sa < sb {
		return -1
	}
	if sa > sb {
		return 1
	}
	return 0
}

// slopeForTieBreak returns a's slope, mapping the vertical case's NaN to
// +Inf so verticals sort consistently to one side of non-vertical segments
// sharing the same x-at-height. A horizontal segment's slope is already the
// finite value 0, which sorts distinctly from both verticals (+Inf) and any
// sloped segment that happens to share its representative x, so it needs no
// mapping of its own here.
func slopeForTieBreak(s geometry.Segment) float64 {
	slope := s.Slope()
	if math.IsNaN(slope) {
		return math.Inf(1)
	}
	return slope
}

// SetHeight repositions the sweep line to y = k for subsequent comparisons.
func (s *status) SetHeight(k float64) {
	s.k = k
}

// Insert adds a segment to T.
func (s *status) Insert(seg geometry.Segment) {
	s.set.Insert(seg)
}

// Remove deletes a segment from T.
func (s *status) Remove(seg geometry.Segment) {
	s.set.Remove(seg)
}

// RemoveAll removes every segment in segs from T.
func (s *status) RemoveAll(segs []geometry.Segment) {
	for _, seg := range segs {
		s.set.Remove(seg)
	}
}

// pointProbe is a vertical segment standing in for a bare x-coordinate: its
// XAtHeight is x regardless of k, so it can be compared against real
// segments using the same comparator, mirroring the teacher's
// statusStructureEntryFindPointNeighbors technique.
func pointProbe(x float64) geometry.Segment {
	return geometry.NewSegment(geometry.NewPoint(x, 0), geometry.NewPoint(x, 1))
}

// LeftNeighborOfPoint returns the segment immediately left of p at the
// current sweep-line height.
func (s *status) LeftNeighborOfPoint(p geometry.Point) (geometry.Segment, bool) {
	return s.set.LeftNeighbor(pointProbe(p.X()))
}

// RightNeighborOfPoint returns the segment immediately right of p at the
// current sweep-line height.
func (s *status) RightNeighborOfPoint(p geometry.Point) (geometry.Segment, bool) {
	return s.set.RightNeighbor(pointProbe(p.X()))
}

// LeftNeighborOfSegment returns the predecessor of seg in T.
func (s *status) LeftNeighborOfSegment(seg geometry.Segment) (geometry.Segment, bool) {
	return s.set.LeftNeighbor(seg)
}

// RightNeighborOfSegment returns the successor of seg in T.
func (s *status) RightNeighborOfSegment(seg geometry.Segment) (geometry.Segment, bool) {
	return s.set.RightNeighbor(seg)
}

// SegmentsContaining returns the segments in T whose bounding box and
// collinearity test place p on them, split into segments ending at p (L(p))
// and segments passing through p's interior (C(p)).
//
// It walks outward from p's floor and ceiling neighbors, stopping in each
// direction as soon as a segment no longer contains p — every segment in T
// is ordered by x-at-height, so segments containing p form a contiguous run
// around p's position.
func (s *status) SegmentsContaining(p geometry.Point) (lOfP, cOfP []geometry.Segment) {
	probe := pointProbe(p.X())

	visit := func(seg geometry.Segment) bool {
		switch {
		case seg.Upper(s.opts...).Eq(p, s.opts...):
			// Already tracked via U(p); nothing to add here.
			return true
		case seg.Lower(s.opts...).Eq(p, s.opts...):
			lOfP = append(lOfP, seg)
			return true
		case containsInterior(seg, p, s.opts...):
			cOfP = append(cOfP, seg)
			return true
		default:
			return false
		}
	}

	if floor, ok := s.set.LeftNeighbor(probe); ok {
		if visit(floor) {
			for {
				next, ok := s.set.LeftNeighbor(floor)
				if !ok || !visit(next) {
					break
				}
				floor = next
			}
		}
	}
	if exact, ok := s.set.Search(probe); ok {
		visit(exact)
	}
	if ceil, ok := s.set.RightNeighbor(probe); ok {
		if visit(ceil) {
			for {
				next, ok := s.set.RightNeighbor(ceil)
				if !ok || !visit(next) {
					break
				}
				ceil = next
			}
		}
	}

	return lOfP, cOfP
}

func containsInterior(seg geometry.Segment, p geometry.Point, opts ...options.GeometryOptionsFunc) bool {
	if seg.Upper(opts...).Eq(p, opts...) || seg.Lower(opts...).Eq(p, opts...) {
		return false
	}
	return geometry.Orientation(seg.P1(), seg.P2(), p, opts...) == geometry.Collinear &&
		geometry.OnSegment(seg.P1(), p, seg.P2(), opts...)
}

// SegmentsBetween returns every segment in T whose x-coordinate at the
// current sweep height lies strictly between xLo and xHi.
//
// It exists for horizontal segments: XAtHeight pins a horizontal segment to
// a single representative x (its leftmost point) rather than the x-at-height
// formula used for sloped segments, so ordinary tree adjacency only ever
// discovers its nearest crossing neighbor, not every segment that crosses its
// interior further along its span. Callers use a horizontal segment's own
// endpoints as xLo/xHi to find every such crossing directly.
func (s *status) SegmentsBetween(xLo, xHi float64) []geometry.Segment {
	eps := s.epsilon()
	var out []geometry.Segment

	cur, ok := s.set.RightNeighbor(pointProbe(xLo))
	for ok {
		if numeric.FloatGreaterThanOrEqualTo(cur.XAtHeight(s.k), xHi, eps) {
			break
		}
		out = append(out, cur)
		cur, ok = s.set.RightNeighbor(cur)
	}
	return out
}

// Len returns the number of segments currently in T.
func (s *status) Len() int {
	return s.set.Len()
}
