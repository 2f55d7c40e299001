package drawpath

import "math"

// SolveQuadratic returns the real roots x of c0 + c1·x + c2·x² = 0 in
// increasing order, along with how many there are.
//
// A vanishing c2 degrades to the linear equation, whose single root is
// returned. If every coefficient is zero, 0 is returned as the only root.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	a := c0 / c2
	b := c1 / c2
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		x := -c0 / c1
		switch {
		case !math.IsInf(x, 0):
			return [2]float64{x}, 1
		case c0 == 0 && c1 == 0:
			return [2]float64{0}, 1
		}
		return [2]float64{}, 0
	}

	var x0 float64
	if disc := b*b - 4*a; math.IsInf(disc, 0) {
		// b² overflowed; x² + b·x ≈ 0 gives the large root.
		x0 = -b
	} else {
		switch {
		case disc < 0:
			return [2]float64{}, 0
		case disc == 0:
			return [2]float64{-0.5 * b}, 1
		}
		// The root that avoids cancellation; the other follows from Vieta.
		x0 = -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	}
	x1 := a / x0
	if math.IsInf(x1, 0) {
		return [2]float64{x0}, 1
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	return [2]float64{x0, x1}, 2
}

// SolveCubic returns the real roots x of c0 + c1·x + c2·x² + c3·x³ = 0,
// along with how many there are. The roots are not sorted. A vanishing c3
// degrades to [SolveQuadratic].
//
// The method is Blinn's, as presented in "How to Solve a Cubic Equation" and
// https://momentsingraphics.de/CubicRoots.html.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	inv := 1 / c3
	b := c2 * (1.0 / 3.0 * inv)
	c := c1 * (1.0 / 3.0 * inv)
	d := c0 * inv
	if math.IsInf(d, 0) || math.IsInf(c, 0) || math.IsInf(b, 0) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}

	delta0 := math.FMA(-b, b, c)
	delta1 := math.FMA(-c, b, d)
	delta2 := b*d - c*c
	disc := 4*delta0*delta2 - delta1*delta1
	depressed := math.FMA(-2*b, delta0, delta1)

	switch {
	case disc < 0:
		// One real root.
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * depressed
		return [3]float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - b}, 1
	case disc == 0:
		// A double root.
		x := math.Copysign(math.Sqrt(-delta0), depressed)
		return [3]float64{x - b, -2*x - b}, 2
	}
	// Three real roots, spaced at thirds of a turn.
	th := math.Atan2(math.Sqrt(disc), -depressed) * (1.0 / 3.0)
	sin, cos := math.Sincos(th)
	s3 := sin * math.Sqrt(3)
	m := 2 * math.Sqrt(-delta0)
	return [3]float64{
		math.FMA(m, cos, -b),
		math.FMA(m, 0.5*(-cos+s3), -b),
		math.FMA(m, 0.5*(-cos-s3), -b),
	}, 3
}
