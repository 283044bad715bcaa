package render

import "honnef.co/go/sketch"

// Viewport describes the pixel size of the drawing surface. World space has
// its origin in the centre of the viewport and y pointing up, with one world
// unit per pixel. Image space has its origin in the top left corner and y
// pointing down.
type Viewport struct {
	Width  int
	Height int
}

// WorldToScreen returns the transform from world to image coordinates.
func (v Viewport) WorldToScreen() sketch.Affine {
	return sketch.FlipY.ThenTranslate(sketch.Vec(float64(v.Width)/2, float64(v.Height)/2))
}

// ScreenToWorld returns the transform from image to world coordinates.
func (v Viewport) ScreenToWorld() sketch.Affine {
	return v.WorldToScreen().Invert()
}

// ToWorld converts a pixel position to world coordinates.
func (v Viewport) ToWorld(x, y float64) sketch.Point {
	return sketch.Pt(x, y).Transform(v.ScreenToWorld())
}

// ToScreen converts a world position to pixel coordinates.
func (v Viewport) ToScreen(pt sketch.Point) sketch.Point {
	return pt.Transform(v.WorldToScreen())
}

// Bounds returns the part of world space covered by the viewport.
func (v Viewport) Bounds() sketch.Rect {
	return v.ScreenToWorld().TransformRectBoundingBox(sketch.Rect{
		X1: float64(v.Width),
		Y1: float64(v.Height),
	})
}
