// Package render keeps drawable primitives in sync with the curve slots of a
// [sketch.Manager] and rasterises them with gg.
//
// The scene owns an explicit table from (slot, point) to marker primitive and
// from (slot, kind) to line primitive. Primitives whose sample sequence was
// replaced, or whose slot was cleared, are released.
package render

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"honnef.co/go/sketch"
)

// DefaultMarkerRadius is the radius of control point markers, in world units.
const DefaultMarkerRadius = 5

// Kind identifies what a primitive draws.
type Kind int

const (
	Marker Kind = iota
	Curve
	Polygon
)

func (k Kind) String() string {
	switch k {
	case Marker:
		return "marker"
	case Curve:
		return "curve"
	case Polygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Key identifies the control point a marker belongs to.
type Key struct {
	Slot  int
	Point int
}

type lineKey struct {
	slot int
	kind Kind
}

// Primitive is one drawable object: a marker disc or a polyline, in world
// coordinates.
type Primitive struct {
	Kind   Kind
	Points []sketch.Point
	// Primary is set for primitives of the active slot. Other slots stay in
	// the scene but are drawn dimmed.
	Primary bool
	// HitTestable is set for markers of the active slot only.
	HitTestable bool

	released bool
}

// Released reports whether the primitive has been dropped from the scene.
func (p *Primitive) Released() bool { return p.released }

// Source is what a scene is synchronised from. [*sketch.Manager] implements it.
type Source interface {
	Slots() iter.Seq2[int, sketch.SlotView]
}

// Scene is the retained set of primitives for all slots.
type Scene struct {
	markerRadius float64

	markers map[Key]*Primitive
	lines   map[lineKey]*Primitive
	// generation each slot's primitives were built from
	built  map[int]uint64
	active map[int]bool
	// bounds of each non-empty slot, markers included
	bounds map[int]sketch.Rect

	created  int
	released int
}

// NewScene returns an empty scene. A non-positive radius selects
// [DefaultMarkerRadius].
func NewScene(markerRadius float64) *Scene {
	if markerRadius <= 0 {
		markerRadius = DefaultMarkerRadius
	}
	return &Scene{
		markerRadius: markerRadius,
		markers:      make(map[Key]*Primitive),
		lines:        make(map[lineKey]*Primitive),
		built:        make(map[int]uint64),
		active:       make(map[int]bool),
		bounds:       make(map[int]sketch.Rect),
	}
}

// Sync brings the scene up to date with src. Slots whose generation did not
// change keep their primitives; for the others, line primitives are replaced,
// markers are moved in place, and surplus markers are released. Active flags
// are refreshed for every slot.
func (sc *Scene) Sync(src Source) {
	seen := make(map[int]bool)
	for i, s := range src.Slots() {
		seen[i] = true
		if gen, ok := sc.built[i]; !ok || gen != s.Generation() {
			sc.rebuild(i, s)
			sc.built[i] = s.Generation()
		}
		sc.setActive(i, s.Active())
	}
	for i := range sc.built {
		if !seen[i] {
			sc.releaseSlot(i, 0)
			delete(sc.built, i)
			delete(sc.active, i)
			delete(sc.bounds, i)
		}
	}
}

func (sc *Scene) rebuild(slot int, s sketch.SlotView) {
	pts := s.Points()
	for j, pt := range pts {
		k := Key{slot, j}
		if m, ok := sc.markers[k]; ok {
			m.Points[0] = pt
			continue
		}
		sc.markers[k] = sc.newPrimitive(Marker, []sketch.Point{pt})
	}
	sc.releaseSlot(slot, len(pts))

	sc.replaceLine(lineKey{slot, Curve}, s.CurveSamples())
	sc.replaceLine(lineKey{slot, Polygon}, s.PolygonSamples())

	if r, ok := s.BoundingBox(); ok {
		sc.bounds[slot] = r.Inflate(sc.markerRadius, sc.markerRadius)
	} else {
		delete(sc.bounds, slot)
	}
}

func (sc *Scene) replaceLine(k lineKey, samples []sketch.Point) {
	if old, ok := sc.lines[k]; ok {
		sc.release(old)
		delete(sc.lines, k)
	}
	if len(samples) < 2 {
		return
	}
	sc.lines[k] = sc.newPrimitive(k.kind, samples)
}

// releaseSlot releases the slot's markers from index keep onwards. With keep
// 0 it also releases the slot's lines.
func (sc *Scene) releaseSlot(slot, keep int) {
	for k, m := range sc.markers {
		if k.Slot == slot && k.Point >= keep {
			sc.release(m)
			delete(sc.markers, k)
		}
	}
	if keep > 0 {
		return
	}
	for k, l := range sc.lines {
		if k.slot == slot {
			sc.release(l)
			delete(sc.lines, k)
		}
	}
}

func (sc *Scene) newPrimitive(kind Kind, pts []sketch.Point) *Primitive {
	sc.created++
	return &Primitive{Kind: kind, Points: pts}
}

func (sc *Scene) release(p *Primitive) {
	if p.released {
		return
	}
	p.released = true
	p.Points = nil
	sc.released++
	sketch.Logger().Debug("primitive released", "kind", p.Kind)
}

func (sc *Scene) setActive(slot int, active bool) {
	sc.active[slot] = active
	for k, m := range sc.markers {
		if k.Slot == slot {
			m.Primary = active
			m.HitTestable = active
		}
	}
	for k, l := range sc.lines {
		if k.slot == slot {
			l.Primary = active
		}
	}
}

// Marker returns the marker of the given control point.
func (sc *Scene) Marker(k Key) (*Primitive, bool) {
	p, ok := sc.markers[k]
	return p, ok
}

// Line returns the curve or polygon primitive of a slot.
func (sc *Scene) Line(slot int, kind Kind) (*Primitive, bool) {
	p, ok := sc.lines[lineKey{slot, kind}]
	return p, ok
}

// Len returns the number of live primitives.
func (sc *Scene) Len() int { return len(sc.markers) + len(sc.lines) }

// Created returns the number of primitives created since the scene was made.
func (sc *Scene) Created() int { return sc.created }

// Released returns the number of primitives released since the scene was made.
func (sc *Scene) Released() int { return sc.released }

// MarkerRadius returns the radius used for drawing and hit testing markers.
func (sc *Scene) MarkerRadius() float64 { return sc.markerRadius }

// HitTest returns the hit-testable marker closest to pt within the marker
// radius. Markers of inactive slots are never hit. Ties go to the lowest
// point index.
func (sc *Scene) HitTest(pt sketch.Point) (Key, bool) {
	var (
		best    Key
		bestD   float64
		found   bool
		keys    = slices.SortedFunc(maps.Keys(sc.markers), compareKeys)
		radius2 = sc.markerRadius * sc.markerRadius
	)
	for _, k := range keys {
		m := sc.markers[k]
		if !m.HitTestable || !sc.bounds[k.Slot].Contains(pt) {
			continue
		}
		c := m.Points[0]
		if !sketch.NewRectFromCenter(c, sc.markerRadius).Contains(pt) {
			continue
		}
		d := c.DistanceSquared(pt)
		if d > radius2 {
			continue
		}
		if !found || d < bestD {
			best, bestD, found = k, d, true
		}
	}
	return best, found
}

// PickActive returns the index of the active slot's control point under pt.
func (sc *Scene) PickActive(pt sketch.Point) (int, bool) {
	k, ok := sc.HitTest(pt)
	return k.Point, ok
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Slot, b.Slot); c != 0 {
		return c
	}
	return cmp.Compare(a.Point, b.Point)
}

// VisibleSlots returns the indices of the slots with content overlapping
// view, in drawing order.
func (sc *Scene) VisibleSlots(view sketch.Rect) []int {
	var out []int
	for _, i := range sc.slotOrder() {
		if b, ok := sc.bounds[i]; ok && b.Overlaps(view) {
			out = append(out, i)
		}
	}
	return out
}

// slotOrder returns slot indices with inactive slots first, so that the
// active slot is drawn on top.
func (sc *Scene) slotOrder() []int {
	active := -1
	var out []int
	for _, i := range slices.Sorted(maps.Keys(sc.built)) {
		if sc.active[i] {
			active = i
			continue
		}
		out = append(out, i)
	}
	if active >= 0 {
		out = append(out, active)
	}
	return out
}

func (sc *Scene) slotMarkers(slot int) []*Primitive {
	var keys []Key
	for k := range sc.markers {
		if k.Slot == slot {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, compareKeys)
	out := make([]*Primitive, len(keys))
	for i, k := range keys {
		out[i] = sc.markers[k]
	}
	return out
}
