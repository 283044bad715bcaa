package sketch

import (
	"fmt"
	"slices"
	"strings"
)

// Interpolation selects how a slot turns its control points into a smooth
// curve.
type Interpolation int

const (
	// Global draws one Bézier curve of degree n−1 through all n points (see
	// [Bezier]).
	Global Interpolation = iota
	// Piecewise draws one cubic segment per adjacent pair of points (see
	// [CatmullRom]).
	Piecewise
)

func (m Interpolation) String() string {
	switch m {
	case Global:
		return "global"
	case Piecewise:
		return "piecewise"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(m))
	}
}

// ParseInterpolation parses the names produced by [Interpolation.String].
// Matching is case-insensitive.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return Global, nil
	case "piecewise":
		return Piecewise, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %q", s)
	}
}

// SlotOptions configures how a [Slot] generates its samples.
type SlotOptions struct {
	Mode Interpolation
	// Polygon enables the straight-line control polygon overlay.
	Polygon bool
	// GlobalSteps is the sampling resolution in Global mode. Zero means
	// [GlobalSteps].
	GlobalSteps int
	// SegmentSteps is the per-segment sampling resolution in Piecewise mode.
	// Zero means [SegmentSteps].
	SegmentSteps int
}

// DefaultSlotOptions returns global interpolation with the polygon overlay
// and default resolutions.
func DefaultSlotOptions() SlotOptions {
	return SlotOptions{
		Mode:         Global,
		Polygon:      true,
		GlobalSteps:  GlobalSteps,
		SegmentSteps: SegmentSteps,
	}
}

func (o SlotOptions) normalize() SlotOptions {
	if o.GlobalSteps <= 0 {
		o.GlobalSteps = GlobalSteps
	}
	if o.SegmentSteps <= 0 {
		o.SegmentSteps = SegmentSteps
	}
	return o
}

// SlotView is the read-only side of a [Slot]. It is what render and
// interaction code receive from a [Manager]; the manager's methods are the
// only write path into its slots.
type SlotView interface {
	// Points returns a copy of the control points in insertion order.
	Points() []Point
	// CurveSamples returns a copy of the smooth curve samples. It is empty
	// when the slot has fewer than two points.
	CurveSamples() []Point
	// PolygonSamples returns a copy of the control polygon, or nothing if the
	// overlay is disabled or the slot has fewer than two points.
	PolygonSamples() []Point
	Len() int
	Mode() Interpolation
	Polygon() bool
	// Active reports whether this slot currently receives mutations.
	Active() bool
	// Generation changes every time the sample sequences are replaced.
	Generation() uint64
	BoundingBox() (Rect, bool)
}

var (
	_ SlotView = (*Slot)(nil)
	_ SlotView = readOnly{}
)

// readOnly hides a *Slot behind its SlotView methods.
type readOnly struct{ s *Slot }

func (v readOnly) Points() []Point           { return v.s.Points() }
func (v readOnly) CurveSamples() []Point     { return v.s.CurveSamples() }
func (v readOnly) PolygonSamples() []Point   { return v.s.PolygonSamples() }
func (v readOnly) Len() int                  { return v.s.Len() }
func (v readOnly) Mode() Interpolation       { return v.s.Mode() }
func (v readOnly) Polygon() bool             { return v.s.Polygon() }
func (v readOnly) Active() bool              { return v.s.Active() }
func (v readOnly) Generation() uint64        { return v.s.Generation() }
func (v readOnly) BoundingBox() (Rect, bool) { return v.s.BoundingBox() }

// Slot is one editable curve: an ordered sequence of control points and the
// sample sequences derived from it.
//
// Every mutating method regenerates the samples, either in full through
// [Slot.Recompute] or, for a moved point in Piecewise mode, segment by
// segment. The zero value is not usable; use [NewSlot].
type Slot struct {
	opts    SlotOptions
	points  []Point
	curve   []Point
	polygon []Point
	active  bool
	gen     uint64
}

// NewSlot returns an empty slot.
func NewSlot(opts SlotOptions) *Slot {
	return &Slot{opts: opts.normalize()}
}

// AddPoint appends p to the control points and recomputes the samples.
func (s *Slot) AddPoint(p Point) {
	s.points = append(s.points, p)
	s.Recompute()
}

// MovePoint replaces the control point at index i with p and updates the
// samples. It returns an [*IndexError] if i is not in [0, Len()).
//
// In Piecewise mode only the segments whose window includes the point are
// resampled; the result is the same as a full [Slot.Recompute].
func (s *Slot) MovePoint(i int, p Point) error {
	if err := checkIndex("move point", i, len(s.points)); err != nil {
		return err
	}
	s.points[i] = p
	if s.opts.Mode == Piecewise {
		s.resampleAround(i)
		return nil
	}
	s.Recompute()
	return nil
}

// resampleAround rebuilds the curve samples of the segments affected by
// point i, copying the rest from the current samples.
func (s *Slot) resampleAround(i int) {
	cr := CatmullRom(s.points)
	per := s.opts.SegmentSteps + 1
	if cr.NumSegments() == 0 || len(s.curve) != cr.NumSegments()*per {
		s.Recompute()
		return
	}
	curve := slices.Clone(s.curve)
	lo, hi := cr.SegmentsAffectedBy(i)
	for j := lo; j < hi; j++ {
		copy(curve[j*per:(j+1)*per], cr.SampleSegment(j, s.opts.SegmentSteps))
	}
	s.replace(curve)
	Logger().Debug("segments resampled", "from", lo, "to", hi)
}

// Clear removes all control points and samples.
func (s *Slot) Clear() {
	s.points = nil
	s.curve = nil
	s.polygon = nil
	s.gen++
}

// SetMode switches the interpolation mode and recomputes the samples.
func (s *Slot) SetMode(m Interpolation) {
	s.opts.Mode = m
	s.Recompute()
}

// SetPolygon enables or disables the control polygon overlay.
func (s *Slot) SetPolygon(on bool) {
	s.opts.Polygon = on
	s.Recompute()
}

// Recompute regenerates both sample sequences from the current control
// points. Calling it twice without an intervening mutation yields identical
// samples.
func (s *Slot) Recompute() {
	s.replace(s.evaluate())
}

// replace installs a new curve sample sequence and derives the polygon from
// the control points.
func (s *Slot) replace(curve []Point) {
	s.curve = curve
	s.polygon = nil
	if s.opts.Polygon && len(s.points) >= 2 {
		s.polygon = slices.Clone(s.points)
	}
	s.gen++
	Logger().Debug("curve recomputed",
		"mode", s.opts.Mode,
		"points", len(s.points),
		"samples", len(s.curve))
}

func (s *Slot) evaluate() []Point {
	if len(s.points) < 2 {
		return nil
	}
	switch s.opts.Mode {
	case Piecewise:
		return CatmullRom(s.points).Sample(s.opts.SegmentSteps)
	default:
		return Bezier(s.points).Sample(s.opts.GlobalSteps)
	}
}

func (s *Slot) Points() []Point         { return slices.Clone(s.points) }
func (s *Slot) CurveSamples() []Point   { return slices.Clone(s.curve) }
func (s *Slot) PolygonSamples() []Point { return slices.Clone(s.polygon) }
func (s *Slot) Len() int                { return len(s.points) }
func (s *Slot) Mode() Interpolation     { return s.opts.Mode }
func (s *Slot) Polygon() bool           { return s.opts.Polygon }
func (s *Slot) Active() bool            { return s.active }
func (s *Slot) Generation() uint64      { return s.gen }

// IsEmpty reports whether the slot has no curve, that is, fewer than two
// control points.
func (s *Slot) IsEmpty() bool { return len(s.curve) == 0 }

// BoundingBox returns the bounding box of the control points and curve
// samples. The second result is false for a slot without points.
func (s *Slot) BoundingBox() (Rect, bool) {
	r, ok := Polyline(s.points).BoundingBox()
	if !ok {
		return Rect{}, false
	}
	if c, ok := Polyline(s.curve).BoundingBox(); ok {
		r = r.Union(c)
	}
	return r, true
}
