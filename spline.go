package sketch

import "iter"

// CatmullRom is an interpolating spline through its points. Every pair of
// adjacent points is joined by one cubic Bézier segment whose handles are
// derived from the neighbouring points, as in a Catmull-Rom spline. The
// result passes through every point and is C¹ continuous at the joins.
//
// The spline is local: moving a point only changes the segments whose
// four-point window includes it. See [CatmullRom.SegmentsAffectedBy].
type CatmullRom []Point

// NumSegments returns the number of cubic segments, which is one less than
// the number of points, or zero.
func (cr CatmullRom) NumSegments() int {
	return max(len(cr)-1, 0)
}

// Segment returns the i'th cubic segment, joining cr[i] and cr[i+1].
//
// The window {p0, p1, p2, p3} is {cr[i-1], cr[i], cr[i+1], cr[i+2]}, with the
// missing neighbour at either end of the spline replaced by the nearest
// available point. The handles are
//
//	b0 = p1
//	b1 = p1 + (p2 − p0) / 6
//	b2 = p2 − (p3 − p1) / 6
//	b3 = p2
func (cr CatmullRom) Segment(i int) CubicBez {
	p1 := cr[i]
	p2 := cr[i+1]
	p0 := p1
	if i > 0 {
		p0 = cr[i-1]
	}
	p3 := p2
	if i+2 < len(cr) {
		p3 = cr[i+2]
	}
	return CubicBez{
		P0: p1,
		P1: p1.Translate(p2.Sub(p0).Div(6)),
		P2: p2.Translate(p3.Sub(p1).Div(6).Negate()),
		P3: p2,
	}
}

// Segments returns an iterator over the cubic segments in point order. A
// spline with fewer than two points has no segments.
func (cr CatmullRom) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for i := range cr.NumSegments() {
			if !yield(cr.Segment(i)) {
				return
			}
		}
	}
}

// SegmentsAffectedBy returns the half-open range [lo, hi) of segments whose
// shape depends on the point at index. Out of range indices yield an empty
// range.
func (cr CatmullRom) SegmentsAffectedBy(index int) (lo, hi int) {
	n := cr.NumSegments()
	if index < 0 || index >= len(cr) || n == 0 {
		return 0, 0
	}
	lo = max(index-2, 0)
	hi = min(index+2, n)
	return lo, hi
}

// Sample samples every segment at steps+1 uniformly spaced parameters and
// concatenates the results in segment order. Each interior point therefore
// appears twice: as the end of one segment and the start of the next. The
// result is nil if the spline has fewer than two points.
func (cr CatmullRom) Sample(steps int) []Point {
	n := cr.NumSegments()
	if n == 0 {
		return nil
	}
	steps = max(steps, 1)
	out := make([]Point, 0, n*(steps+1))
	for seg := range cr.Segments() {
		out = appendSamples(out, seg, steps)
	}
	return out
}

// SampleSegment returns the samples of the i'th segment alone, as they
// appear in the output of [CatmullRom.Sample].
func (cr CatmullRom) SampleSegment(i, steps int) []Point {
	return Sample(cr.Segment(i), steps)
}
