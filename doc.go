// Package sketch is the engine of an interactive curve sketching tool. The
// user places control points on a plane and the engine keeps a smooth curve
// through them up to date, next to the straight-line control polygon.
//
// # Curves
//
// Two interpolation schemes are provided:
//
//   - [Bezier] is a single Bézier curve whose degree grows with the number of
//     points. It is evaluated in Bernstein form using [Binomial], or by de
//     Casteljau's algorithm past [MaxBernsteinDegree].
//     Every point influences the whole curve.
//   - [CatmullRom] joins each pair of adjacent points with a cubic Bézier
//     segment ([CubicBez]) whose handles are derived from the neighbouring
//     points. The curve passes through every point and edits stay local.
//
// Both are sampled at a fixed resolution into polylines for drawing
// ([GlobalSteps], [SegmentSteps]).
//
// # Slots
//
// A [Slot] owns one ordered sequence of control points and the sample
// sequences derived from it. Every mutation installs a fresh sample
// sequence; samples handed out are never edited afterwards. Moving a point of
// a [Piecewise] slot resamples only the segments that point influences.
//
// A [Manager] owns a fixed number of slots (three by default), exactly one of
// which is active. Adding, moving and clearing points always addresses the
// active slot. The manager hands out slots as read-only [SlotView]s, so its
// own methods are the only write path.
//
// # Adapters
//
// Drawing and input handling live in sub-packages: render keeps a table of
// drawable primitives in sync with a Manager and rasterises it, and interact
// turns pointer, keyboard and text-entry events into Manager calls.
//
// # Coordinate system
//
// Points live on a plane with the origin in the centre of the view and y
// pointing up. Image space is y-down; see [FlipY].
package sketch
