package drawpath

import "sort"

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// lineCubic returns the straight line from p0 to p1 as a cubic, with its
// control points at the thirds.
func lineCubic(p0, p1 Point) CubicBez {
	return CubicBez{
		P0: p0,
		P1: Pt((p0.X+p0.X+p1.X)/3, (p0.Y+p0.Y+p1.Y)/3),
		P2: Pt((p0.X+p1.X+p1.X)/3, (p0.Y+p1.Y+p1.Y)/3),
		P3: p1,
	}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

// Eval returns the point at parameter t, using the same per-coordinate
// evaluation as [Interpolate].
func (c CubicBez) Eval(t float64) Point {
	return Pt(
		Interpolate(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t),
		Interpolate(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t),
	)
}

// deriv returns the tangent vector at t.
func (c CubicBez) deriv(t float64) Vec2 {
	a := c.P1.Sub(c.P0)
	b := c.P2.Sub(c.P1)
	d := c.P3.Sub(c.P2)
	mt := 1 - t
	return a.Mul(3 * mt * mt).Add(b.Mul(6 * mt * t)).Add(d.Mul(3 * t * t))
}

// Subsegment returns the part of the curve between t0 and t1, itself as a
// cubic parametrized over [0, 1].
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0, p3 := c.Eval(t0), c.Eval(t1)
	k := (t1 - t0) / 3
	return CubicBez{
		P0: p0,
		P1: p0.Translate(c.deriv(t0).Mul(k)),
		P2: p3.Translate(c.deriv(t1).Mul(-k)),
		P3: p3,
	}
}

// Extrema returns the parameters strictly between 0 and 1 at which the curve
// turns around in x or in y, sorted. There are at most four.
func (c CubicBez) Extrema() ([4]float64, int) {
	var ts [4]float64
	n := 0
	axis := func(p0, p1, p2, p3 float64) {
		// Zeros of the derivative, divided by three.
		d0, d1, d2 := p1-p0, p2-p1, p3-p2
		roots, m := SolveQuadratic(d0, 2*(d1-d0), d0-2*d1+d2)
		for _, t := range roots[:m] {
			if 0 < t && t < 1 {
				ts[n] = t
				n++
			}
		}
	}
	axis(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	axis(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	sort.Float64s(ts[:n])
	return ts, n
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// curve in the range [0, 1].
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Winding returns the contribution of the segment to the winding number of
// pt. A ray is cast to the left of pt; downward crossings (increasing y)
// count -1, upward ones +1.
func (c CubicBez) Winding(pt Point) int {
	ex, n := c.Extrema()
	var w int
	t0 := 0.0
	for _, t := range ex[:n] {
		w += c.Subsegment(t0, t).windingInner(pt)
		t0 = t
	}
	return w + c.Subsegment(t0, 1).windingInner(pt)
}

// windingInner assumes the curve is monotonic in both coordinates.
func (c CubicBez) windingInner(pt Point) int {
	start := c.P0
	end := c.P3
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	if pt.X < min(start.X, end.X, c.P1.X, c.P2.X) {
		return 0
	}
	if pt.X >= max(start.X, end.X, c.P1.X, c.P2.X) {
		return sign
	}
	a := end.Y - 3.0*c.P2.Y + 3.0*c.P1.Y - start.Y
	b := 3.0 * (c.P2.Y - 2.0*c.P1.Y + start.Y)
	cc := 3.0 * (c.P1.Y - start.Y)
	d := start.Y - pt.Y
	solution, n := SolveCubic(d, cc, b, a)
	for _, t := range solution[:n] {
		if t >= 0.0 && t <= 1.0 {
			if pt.X >= c.Eval(t).X {
				return sign
			}
			return 0
		}
	}
	// Roundoff pushed the crossing just outside [0, 1]; the segment is
	// monotonic, so bisect for it instead.
	lo, hi := 0.0, 1.0
	for range 64 {
		mid := 0.5 * (lo + hi)
		if (c.Eval(mid).Y < pt.Y) == (start.Y < end.Y) {
			lo = mid
		} else {
			hi = mid
		}
	}
	if pt.X >= c.Eval(lo).X {
		return sign
	}
	return 0
}
