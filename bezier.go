package sketch

import "math"

// MaxBernsteinDegree is the highest degree [Bezier.Eval] evaluates in
// Bernstein form. Above it the largest binomial coefficients overflow
// float64, and Eval switches to de Casteljau's algorithm.
const MaxBernsteinDegree = 1000

// Bezier is a single Bézier curve of degree len−1 whose control points are
// the elements of the slice.
//
// Unlike a spline, a Bezier is one global polynomial: moving or adding any
// control point changes the whole curve.
type Bezier []Point

// Degree returns the polynomial degree of the curve, or -1 for an empty
// Bezier.
func (b Bezier) Degree() int {
	return len(b) - 1
}

func (b Bezier) Start() Point {
	if len(b) == 0 {
		return Point{}
	}
	return b[0]
}

func (b Bezier) End() Point {
	if len(b) == 0 {
		return Point{}
	}
	return b[len(b)-1]
}

// Eval evaluates the curve at t in Bernstein form,
//
//	B(t) = Σ C(n, i) · tⁱ · (1−t)ⁿ⁻ⁱ · Pᵢ
//
// Parameters at or below 0 return the first control point and parameters at
// or above 1 return the last one, exactly. A Bezier with fewer than two
// control points has no curve; Eval then returns its only point, or the zero
// point if it is empty.
//
// Curves of degree above [MaxBernsteinDegree] are evaluated by repeated
// linear interpolation instead, which gives the same point without
// computing binomial coefficients.
func (b Bezier) Eval(t float64) Point {
	n := len(b) - 1
	if n < 1 {
		return b.Start()
	}
	if t <= 0 {
		return b[0]
	}
	if t >= 1 {
		return b[n]
	}

	if n > MaxBernsteinDegree {
		return b.deCasteljau(t)
	}

	var x, y float64
	mt := 1 - t
	for i, p := range b {
		w := Binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(mt, float64(n-i))
		x += p.X * w
		y += p.Y * w
	}
	return Point{X: x, Y: y}
}

func (b Bezier) deCasteljau(t float64) Point {
	pts := make([]Vec2, len(b))
	for i, p := range b {
		pts[i] = Vec2(p)
	}
	mt := 1 - t
	for n := len(pts) - 1; n > 0; n-- {
		for i := range n {
			pts[i] = pts[i].Mul(mt).Add(pts[i+1].Mul(t))
		}
	}
	return Point(pts[0])
}

// Sample evaluates the curve at steps+1 uniformly spaced parameters. It
// returns nil if the curve has fewer than two control points.
func (b Bezier) Sample(steps int) []Point {
	if len(b) < 2 {
		return nil
	}
	return Sample(b, steps)
}
