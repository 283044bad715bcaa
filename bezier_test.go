package sketch

import (
	"math"
	"testing"
)

func TestBezierEndpointsExact(t *testing.T) {
	curves := []Bezier{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(0.1, 0.2), Pt(10.3, -7.7), Pt(1e3, 5)},
		{Pt(-1, -1), Pt(3, 7), Pt(5, 5), Pt(9, -2), Pt(0.3, 0.7)},
	}
	for _, b := range curves {
		if got := b.Eval(0); got != b[0] {
			t.Errorf("Eval(0) = %v, want %v", got, b[0])
		}
		if got := b.Eval(1); got != b[len(b)-1] {
			t.Errorf("Eval(1) = %v, want %v", got, b[len(b)-1])
		}
		if got := b.Eval(-0.5); got != b[0] {
			t.Errorf("Eval(-0.5) = %v, want %v", got, b[0])
		}
		if got := b.Eval(2); got != b[len(b)-1] {
			t.Errorf("Eval(2) = %v, want %v", got, b[len(b)-1])
		}
	}
}

func TestBezierTwoPointsIsLinear(t *testing.T) {
	a, b := Pt(-3, 2), Pt(7, 12)
	bez := Bezier{a, b}
	for _, tt := range Params(50) {
		want := Pt(a.X+(b.X-a.X)*tt, a.Y+(b.Y-a.Y)*tt)
		assertNear(t, bez.Eval(tt), want, 1e-12)
	}
}

func TestBezierQuadraticMidpoint(t *testing.T) {
	b := Bezier{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	diff(t, Pt(7.5, 2.5), b.Eval(0.5))
	if b.Degree() != 2 {
		t.Errorf("got degree %d, want 2", b.Degree())
	}
}

func TestBezierMatchesCubicBez(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(30, 80), Pt(70, -20), Pt(100, 40)}
	b := Bezier{c.P0, c.P1, c.P2, c.P3}
	for _, tt := range Params(20) {
		assertNear(t, b.Eval(tt), c.Eval(tt), 1e-9)
	}
}

func TestBezierGlobalInfluence(t *testing.T) {
	// Adding a point changes the curve everywhere, not only near the end.
	b1 := Bezier{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	b2 := append(Bezier{}, b1...)
	b2 = append(b2, Pt(150, 100))
	assertNear(t, b1.Eval(0.1), Pt(10, 18), 1e-9)
	assertNear(t, b2.Eval(0.1), Pt(15, 24.4), 1e-9)
}

func TestBezierDegenerate(t *testing.T) {
	diff(t, Point{}, Bezier(nil).Eval(0.5))
	diff(t, Pt(1, 2), Bezier{Pt(1, 2)}.Eval(0.5))
	if s := (Bezier{Pt(1, 2)}).Sample(GlobalSteps); s != nil {
		t.Errorf("got %d samples for a single point, want none", len(s))
	}
	if s := Bezier(nil).Sample(GlobalSteps); s != nil {
		t.Errorf("got %d samples for no points, want none", len(s))
	}

	// Coincident points are valid.
	same := Bezier{Pt(4, 4), Pt(4, 4), Pt(4, 4)}
	for _, p := range same.Sample(10) {
		assertNear(t, p, Pt(4, 4), 1e-12)
	}
}

func TestBezierSample(t *testing.T) {
	b := Bezier{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	s := b.Sample(GlobalSteps)
	if len(s) != GlobalSteps+1 {
		t.Fatalf("got %d samples, want %d", len(s), GlobalSteps+1)
	}
	if s[0] != b[0] || s[len(s)-1] != b[2] {
		t.Errorf("samples should start at %v and end at %v, got %v and %v", b[0], b[2], s[0], s[len(s)-1])
	}
	diff(t, Pt(7.5, 2.5), s[GlobalSteps/2], pointComparer)
}

func TestBezierHighDegree(t *testing.T) {
	var b Bezier
	for i := range 300 {
		b = append(b, Pt(float64(i), math.Sin(float64(i))))
	}
	for _, p := range b.Sample(GlobalSteps) {
		if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("got non-finite sample %v", p)
		}
	}
	// A Bézier lies in the convex hull of its control points.
	r, _ := Polyline(b).BoundingBox()
	for _, p := range b.Sample(GlobalSteps) {
		if !r.Inflate(1e-6, 1e-6).Contains(p) {
			t.Fatalf("sample %v outside of %v", p, r)
		}
	}
}

func TestBezierDeCasteljauMatchesBernstein(t *testing.T) {
	b := Bezier{Pt(-1, -1), Pt(3, 7), Pt(5, 5), Pt(9, -2), Pt(0.3, 0.7), Pt(12, 4)}
	for _, tt := range Params(40) {
		assertNear(t, b.deCasteljau(tt), b.Eval(tt), 1e-9)
	}
}

func TestBezierBeyondBernsteinDegree(t *testing.T) {
	// Equally spaced collinear control points give B(t) = (n·t, 0).
	for _, n := range []int{MaxBernsteinDegree, MaxBernsteinDegree + 1, 1029, 1500} {
		b := make(Bezier, n+1)
		for i := range b {
			b[i] = Pt(float64(i), 0)
		}
		const steps = 40
		s := b.Sample(steps)
		for j, tt := range Params(steps) {
			p := s[j]
			if math.IsNaN(p.X) || math.IsInf(p.X, 0) || p.Y != 0 {
				t.Fatalf("degree %d: got sample %v at t=%v", n, p, tt)
			}
			if d := math.Abs(p.X - float64(n)*tt); d > 1e-6*float64(n) {
				t.Fatalf("degree %d: got x=%v at t=%v, want %v", n, p.X, tt, float64(n)*tt)
			}
		}
	}
}

func TestParams(t *testing.T) {
	var got []float64
	for _, tt := range Params(4) {
		got = append(got, tt)
	}
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, got)

	got = got[:0]
	for _, tt := range Params(0) {
		got = append(got, tt)
	}
	diff(t, []float64{0, 1}, got)
}
