package sketch

import "iter"

// GlobalSteps is the default number of parameter steps used when sampling a
// [Bezier]. A curve sampled with n steps yields n+1 points.
const GlobalSteps = 200

// SegmentSteps is the default number of parameter steps used when sampling
// each segment of a [CatmullRom].
const SegmentSteps = 24

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}

var _ ParametricCurve = CubicBez{}
var _ ParametricCurve = Bezier{}

// Params returns an iterator over steps+1 uniformly spaced parameters in
// [0, 1], starting at 0 and ending at exactly 1.
//
// Steps less than 1 are treated as 1.
func Params(steps int) iter.Seq2[int, float64] {
	steps = max(steps, 1)
	return func(yield func(int, float64) bool) {
		for j := 0; j <= steps; j++ {
			t := float64(j) / float64(steps)
			if !yield(j, t) {
				return
			}
		}
	}
}

// Sample evaluates c at steps+1 uniformly spaced parameters and returns the
// resulting polyline. The first and last samples are exactly c.Start() and
// c.End().
func Sample(c ParametricCurve, steps int) []Point {
	steps = max(steps, 1)
	out := make([]Point, 0, steps+1)
	return appendSamples(out, c, steps)
}

func appendSamples(dst []Point, c ParametricCurve, steps int) []Point {
	for j, t := range Params(steps) {
		switch j {
		case 0:
			dst = append(dst, c.Start())
		case steps:
			dst = append(dst, c.End())
		default:
			dst = append(dst, c.Eval(t))
		}
	}
	return dst
}
