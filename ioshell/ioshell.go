// Package ioshell reads segment input and writes intersection output for the
// sweep-line engine's command-line shells. It mirrors the original source's
// input.txt/output.txt convention: a count line followed by one "x1 y1 x2 y2"
// line per segment, and one "x y" line per reported intersection point.
package ioshell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bentley-ottmann/sweepline/geometry"
)

// ReadSegments parses segment input in the format:
//
//	n
//	x1 y1 x2 y2
//	...(n lines)
//
// It fails fast with a wrapped diagnostic error on malformed input — a
// missing count, a non-numeric token, or fewer lines than declared.
func ReadSegments(r io.Reader) ([]geometry.Segment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("ioshell: reading segment count: %w", scanner.Err())
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("ioshell: parsing segment count %q: %w", scanner.Text(), err)
	}
	if n < 0 {
		return nil, fmt.Errorf("ioshell: segment count must be non-negative, got %d", n)
	}

	segments := make([]geometry.Segment, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("ioshell: expected %d segments, got %d: %w", n, i, scanner.Err())
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			return nil, fmt.Errorf("ioshell: line %d: expected 4 fields (x1 y1 x2 y2), got %d", i+1, len(fields))
		}
		coords := make([]float64, 4)
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("ioshell: line %d: parsing coordinate %q: %w", i+1, field, err)
			}
			coords[j] = v
		}
		segments = append(segments, geometry.NewSegment(
			geometry.NewPoint(coords[0], coords[1]),
			geometry.NewPoint(coords[2], coords[3]),
		))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioshell: reading input: %w", err)
	}

	return segments, nil
}

// WriteSegments writes segments back out in the same "n\nx1 y1 x2 y2\n..."
// format ReadSegments consumes, used by cmd/intersect to archive its input as
// input.txt.
func WriteSegments(w io.Writer, segments []geometry.Segment) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(segments)); err != nil {
		return fmt.Errorf("ioshell: writing segment count: %w", err)
	}
	for _, seg := range segments {
		x1, y1 := seg.P1().Coordinates()
		x2, y2 := seg.P2().Coordinates()
		if _, err := fmt.Fprintf(bw, "%g %g %g %g\n", x1, y1, x2, y2); err != nil {
			return fmt.Errorf("ioshell: writing segment: %w", err)
		}
	}
	return bw.Flush()
}

// WriteIntersections writes one "x y" line per point, in the order given
// (sweep order, by convention of the caller).
func WriteIntersections(w io.Writer, points []geometry.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		x, y := p.Coordinates()
		if _, err := fmt.Fprintf(bw, "%g %g\n", x, y); err != nil {
			return fmt.Errorf("ioshell: writing intersection point: %w", err)
		}
	}
	return bw.Flush()
}
