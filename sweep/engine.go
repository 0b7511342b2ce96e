// Package sweep implements the Bentley–Ottmann sweep-line algorithm: the
// event queue, the endpoint-classification maps U/L/C, the status structure
// T, and the engine that drives them.
package sweep

import (
	"slices"

	"github.com/bentley-ottmann/sweepline/geometry"
	"github.com/bentley-ottmann/sweepline/numeric"
	"github.com/bentley-ottmann/sweepline/options"
	"github.com/bentley-ottmann/sweepline/orderedset"
)

// FindIntersectionsFast reports every intersection point among segments using
// the Bentley–Ottmann sweep, running in O((n+k) log n) time for n segments
// and k reported intersections.
func FindIntersectionsFast(segments []geometry.Segment, opts ...options.GeometryOptionsFunc) []geometry.Point {
	e := newEngine(opts...)
	e.seed(segments)
	e.run()
	return e.results()
}

// FindIntersectionsSlow reports every intersection point among segments using
// the naive O(n^2) pairwise check. It exists as a correctness baseline for
// property-based tests and small inputs.
func FindIntersectionsSlow(segments []geometry.Segment, opts ...options.GeometryOptionsFunc) []geometry.Point {
	reported := orderedset.New(func(a, b geometry.Point) int {
		return a.Compare(b, opts...)
	})

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if !geometry.DoIntersect(segments[i], segments[j], opts...) {
				continue
			}
			q, ok := geometry.Intersect(segments[i], segments[j], opts...)
			if !ok {
				// Collinear overlap: DoIntersect is true but Intersect
				// refuses to name a single point (§ collinear-overlap).
				continue
			}
			reported.Insert(q)
		}
	}

	var out []geometry.Point
	reported.Ascend(func(p geometry.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// engine holds the working state of one FindIntersectionsFast run: the
// endpoint maps, the event queue, the status structure, and the reported set.
// It is created fresh per call and discarded when the call returns.
type engine struct {
	opts     []options.GeometryOptionsFunc
	upper    *endpointMap // U
	lower    *endpointMap // L
	interior *endpointMap // C
	queue    *eventQueue
	status   *status
	reported *orderedset.OrderedSet[geometry.Point]
	degen    []geometry.Point
}

func newEngine(opts ...options.GeometryOptionsFunc) *engine {
	return &engine{
		opts:     opts,
		upper:    newEndpointMap(opts...),
		lower:    newEndpointMap(opts...),
		interior: newEndpointMap(opts...),
		queue:    newEventQueue(opts...),
		status:   newStatus(opts...),
		reported: orderedset.New(func(a, b geometry.Point) int { return a.Compare(b, opts...) }),
	}
}

// seed populates U, L, and the event queue from the input segments.
// Degenerate segments (zero-length within epsilon) are not queued and take no
// part in the sweep. Their points are kept in e.degen, which results() does
// not read, so they never appear in FindIntersectionsFast's output.
func (e *engine) seed(segments []geometry.Segment) {
	for _, seg := range segments {
		if seg.IsDegenerate(e.opts...) {
			e.degen = append(e.degen, seg.P1())
			continue
		}
		upper, lower := seg.Upper(e.opts...), seg.Lower(e.opts...)
		e.upper.Upsert(upper, seg)
		e.lower.Upsert(lower, seg)
		e.queue.Insert(upper)
		e.queue.Insert(lower)
	}
}

// run drains the event queue, handling each event in sweep order.
func (e *engine) run() {
	for {
		p, ok := e.queue.Pop()
		if !ok {
			break
		}
		logf("handling event %s, %d segments in T", p, e.status.Len())
		e.handleEvent(p)
	}
}

// results returns every reported intersection point, in sweep order.
func (e *engine) results() []geometry.Point {
	var out []geometry.Point
	e.reported.Ascend(func(p geometry.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// handleEvent processes a single event point per §4.6.3: it reports an
// intersection if warranted, removes segments that end or pass through p,
// advances the sweep-line height, reinserts segments that begin or pass
// through p, then schedules any newly discoverable events.
func (e *engine) handleEvent(p geometry.Point) {
	uOfP := e.upper.Get(p)
	lOfP := e.lower.Get(p)
	cOfP := e.interior.Get(p)

	// SegmentsContaining re-derives L(p)/C(p) against segments still in T
	// that were not already classified via the U/L maps (e.g. a segment
	// passing through p's interior that neither starts nor ends there).
	moreL, moreC := e.status.SegmentsContaining(p)
	lOfP = mergeUnique(lOfP, moreL, e.opts...)
	cOfP = mergeUnique(cOfP, moreC, e.opts...)

	// Step A: report p if at least two segments meet here. A segment counts
	// toward C(p) for reporting purposes only if it actually crosses the
	// others at p; a segment that merely lies on the same infinite line as
	// another (the collinear-overlap degeneracy, §9) contributes no
	// reportable crossing, even though it still participates in T's
	// remove/reinsert bookkeeping below.
	reportableC := reportableInterior(uOfP, lOfP, cOfP, e.opts...)
	if len(uOfP)+len(lOfP)+len(reportableC) > 1 {
		if _, already := e.reported.Search(p); !already {
			logf("reporting intersection at %s", p)
			e.reported.Insert(p)
		}
	}

	// Step B: remove segments ending at or passing through p.
	e.status.RemoveAll(lOfP)
	e.status.RemoveAll(cOfP)

	// Step C: advance the sweep line to just below p.
	eps := e.epsilon()
	e.status.SetHeight(p.Y() - 2*eps)

	// Step D: reinsert segments beginning at or passing through p.
	uAndC := mergeUnique(uOfP, cOfP, e.opts...)
	for _, seg := range uAndC {
		e.status.Insert(seg)
	}

	// Step E: schedule new events.
	if len(uAndC) == 0 {
		bL, okL := e.status.LeftNeighborOfPoint(p)
		bR, okR := e.status.RightNeighborOfPoint(p)
		if okL && okR {
			e.findNewEvent(bL, bR, p)
		}
		return
	}

	sL, sR := extremesByHeight(uAndC, e.status.k)
	if bL, ok := e.status.LeftNeighborOfSegment(sL); ok {
		e.findNewEvent(bL, sL, p)
	}
	if bR, ok := e.status.RightNeighborOfSegment(sR); ok {
		e.findNewEvent(sR, bR, p)
	}

	// A horizontal segment's representative key is pinned to its leftmost x
	// (geometry.Segment.XAtHeight), so the ordinary neighbor checks above only
	// ever find the crossing nearest that left edge. Scan its own x-range
	// directly to find every segment crossing its interior, however far along
	// its span.
	for _, seg := range uAndC {
		if !seg.IsHorizontal(e.opts...) {
			continue
		}
		xLo, xHi := minMax(seg.P1().X(), seg.P2().X())
		for _, other := range e.status.SegmentsBetween(xLo, xHi) {
			if !other.Eq(seg, e.opts...) {
				e.findNewEvent(seg, other, p)
			}
		}
	}
}

func minMax(a, b float64) (lo, hi float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// findNewEvent checks whether s1 and s2 actually cross, and if their crossing
// point lies strictly below p in sweep order, schedules it as a future event
// and records the pair in C.
func (e *engine) findNewEvent(s1, s2 geometry.Segment, p geometry.Point) {
	q, ok := geometry.Intersect(s1, s2, e.opts...)
	if !ok || !geometry.DoIntersect(s1, s2, e.opts...) {
		return
	}

	eps := e.epsilon()
	below := numeric.FloatLessThan(q.Y(), p.Y(), eps) ||
		(numeric.FloatEquals(q.Y(), p.Y(), eps) && numeric.FloatGreaterThan(q.X(), p.X(), eps))
	if !below {
		return
	}

	e.queue.Insert(q)
	e.interior.Upsert(q, s1)
	e.interior.Upsert(q, s2)
}

func (e *engine) epsilon() float64 {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: geometry.DefaultEpsilon}, e.opts...)
	return geoOpts.Epsilon
}

// extremesByHeight returns the leftmost and rightmost of segs at height k.
func extremesByHeight(segs []geometry.Segment, k float64) (leftmost, rightmost geometry.Segment) {
	leftmost, rightmost = segs[0], segs[0]
	for _, seg := range segs[1:] {
		if seg.XAtHeight(k) < leftmost.XAtHeight(k) {
			leftmost = seg
		}
		if seg.XAtHeight(k) > rightmost.XAtHeight(k) {
			rightmost = seg
		}
	}
	return leftmost, rightmost
}

// reportableInterior filters cOfP down to segments that genuinely cross at
// least one segment already anchored at p (via U(p) or L(p)), excluding any
// that merely share an infinite line with one of them. When no segment is
// anchored at p, cOfP is returned unchanged.
func reportableInterior(uOfP, lOfP, cOfP []geometry.Segment, opts ...options.GeometryOptionsFunc) []geometry.Segment {
	anchored := mergeUnique(uOfP, lOfP, opts...)
	if len(anchored) == 0 {
		return cOfP
	}

	out := make([]geometry.Segment, 0, len(cOfP))
	for _, c := range cOfP {
		collinearWithAnchor := false
		for _, a := range anchored {
			if geometry.SameLine(a, c, opts...) {
				collinearWithAnchor = true
				break
			}
		}
		if !collinearWithAnchor {
			out = append(out, c)
		}
	}
	return out
}

func mergeUnique(a, b []geometry.Segment, opts ...options.GeometryOptionsFunc) []geometry.Segment {
	out := make([]geometry.Segment, 0, len(a)+len(b))
	for _, seg := range a {
		if !slices.ContainsFunc(out, func(o geometry.Segment) bool { return o.Eq(seg, opts...) }) {
			out = append(out, seg)
		}
	}
	for _, seg := range b {
		if !slices.ContainsFunc(out, func(o geometry.Segment) bool { return o.Eq(seg, opts...) }) {
			out = append(out, seg)
		}
	}
	return out
}
