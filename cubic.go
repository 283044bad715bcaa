package sketch

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the cubic at t using the Bernstein weights
// (1−t)³, 3(1−t)²t, 3(1−t)t² and t³, in Horner form.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}
