package sketch

// Polyline is a sequence of points joined by straight lines, such as a
// control polygon or a sampled curve.
type Polyline []Point

// BoundingBox returns the smallest rectangle containing every point. The
// second result is false for an empty polyline.
func (pl Polyline) BoundingBox() (Rect, bool) {
	if len(pl) == 0 {
		return Rect{}, false
	}
	r := NewRectFromPoints(pl[0], pl[0])
	for _, pt := range pl[1:] {
		r = r.UnionPoint(pt)
	}
	return r, true
}
