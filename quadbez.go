package drawpath

// QuadBez is a quadratic Bézier segment. Paths store quadratic curves as the
// equivalent cubic; see [QuadBez.Raise].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(q.P0).Mul(mt * mt).Add(Vec2(q.P1).Mul(mt * 2.0).Add(Vec2(q.P2).Mul(t)).Mul(t))
	return Point(v)
}

// Raise returns the cubic Bézier segment that exactly represents q. The
// control points lie two thirds of the way from each end point towards P1.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		Pt((2*q.P1.X+q.P0.X)/3, (2*q.P1.Y+q.P0.Y)/3),
		Pt((2*q.P1.X+q.P2.X)/3, (2*q.P1.Y+q.P2.Y)/3),
		q.P2,
	}
}

func (q QuadBez) BoundingBox() Rect {
	return q.Raise().BoundingBox()
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}
