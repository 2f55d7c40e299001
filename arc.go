package drawpath

import "math"

// Control point ratio for a cubic spanning exactly a quarter turn of the unit
// circle.
const quarterTurnRatio = 0.547443256150549

// approximateArc appends the cubic approximation of an elliptical arc to dst.
// The ellipse is centered on (cx, cy) with radii rx and ry, rotated by phi;
// the arc runs clockwise (in increasing angle) from theta1 to theta2.
//
// It appends the start point followed by one sextuple of parameters per
// cubic and returns the extended slice together with the number of values
// appended, which is 2 + 6n for n cubics.
func approximateArc(dst []float64, cx, cy, rx, ry, phi, theta1, theta2 float64) ([]float64, int) {
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)
	cosTheta1 := math.Cos(theta1)
	sinTheta1 := math.Sin(theta1)

	// Basis of the arc's frame: x axis towards the start point, y axis along
	// the direction of travel, both scaled by the radii.
	xx := cosPhi*cosTheta1*rx - sinPhi*sinTheta1*ry
	yx := -cosPhi*sinTheta1*rx - sinPhi*cosTheta1*ry
	xy := sinPhi*cosTheta1*rx + cosPhi*sinTheta1*ry
	yy := -sinPhi*sinTheta1*rx + cosPhi*cosTheta1*ry

	sweep := theta2 - theta1
	if sweep < 0 {
		sweep += 2 * math.Pi
	}

	n := 2
	dst = append(dst, xx+cx, xy+cy)
	for sweep >= math.Pi/2 {
		dst = append(dst,
			xx+yx*quarterTurnRatio+cx, xy+yy*quarterTurnRatio+cy,
			xx*quarterTurnRatio+yx+cx, xy*quarterTurnRatio+yy+cy,
			yx+cx, yy+cy,
		)
		n += 6
		sweep -= math.Pi / 2
		xx, yx = yx, -xx
		xy, yy = yy, -xy
	}
	if sweep != 0 {
		y1 := (0.3294738052815987 + 0.012120855841304373*sweep) * sweep
		x3 := math.Cos(sweep)
		y3 := math.Sin(sweep)
		x2 := x3 + y1*y3
		y2 := y3 - y1*x3
		dst = append(dst,
			xx+yx*y1+cx, xy+yy*y1+cy,
			xx*x2+yx*y2+cx, xy*x2+yy*y2+cy,
			xx*x3+yx*y3+cx, xy*x3+yy*y3+cy,
		)
		n += 6
	}
	return dst, n
}

// reversePairs reverses the order of the (x, y) pairs in s.
func reversePairs(s []float64) {
	for i, j := 0, len(s)-2; i < j; i, j = i+2, j-2 {
		s[i], s[j] = s[j], s[i]
		s[i+1], s[j+1] = s[j+1], s[i+1]
	}
}

// Ellipse adds an elliptical arc centered on (cx, cy) with radii rx and ry,
// with the ellipse rotated by rotation radians. The arc runs from startAngle
// to endAngle, in increasing angle unless anticlockwise is set.
//
// The arc is connected to the current point with a straight line. On an
// empty path, it starts a new subpath at its first point instead.
//
// Sweeps of a full turn or more in the direction of travel are drawn as one
// full turn, split into half turns, followed by the remainder. Infinite or
// NaN sweeps draw nothing.
func (p *Path) Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float64, anticlockwise bool) {
	sweep := endAngle - startAngle
	if math.IsInf(sweep, 0) || math.IsNaN(sweep) {
		Logger().Debug("ellipse with unbounded sweep ignored", "start", startAngle, "end", endAngle)
		return
	}
	dir := 1.0
	if anticlockwise {
		dir = -1
	}
	// sweep is measured in the direction of travel.
	sweep *= dir
	if math.Abs(sweep) >= 2*math.Pi {
		// Further turns retrace the first one. Reducing the angles keeps
		// them small enough to step through in half turns.
		startAngle = math.Mod(startAngle, 2*math.Pi)
		if sweep > 0 {
			sweep = 2*math.Pi + math.Mod(sweep, 2*math.Pi)
		} else {
			sweep = math.Mod(sweep, 2*math.Pi)
		}
		endAngle = startAngle + dir*sweep
	}
	for sweep >= 2*math.Pi {
		p.ellipse(cx, cy, rx, ry, rotation, startAngle, startAngle+dir*math.Pi, anticlockwise)
		startAngle += dir * math.Pi
		sweep -= math.Pi
	}
	p.ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle, anticlockwise)
}

func (p *Path) ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float64, anticlockwise bool) {
	first := len(p.params)
	var n int
	if anticlockwise {
		if startAngle < endAngle {
			startAngle += 2 * math.Pi
		}
		p.params, n = approximateArc(p.params, cx, cy, rx, ry, rotation, endAngle, startAngle)
		reversePairs(p.params[first:])
	} else {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
		p.params, n = approximateArc(p.params, cx, cy, rx, ry, rotation, startAngle, endAngle)
	}

	if p.hasCursor {
		p.commands = append(p.commands, LineToKind)
	} else {
		p.commands = append(p.commands, MoveToKind)
		p.startX, p.startY = p.params[first], p.params[first+1]
		p.hasCursor = true
	}
	for i := 2; i < n; i += 6 {
		p.commands = append(p.commands, CurveToKind)
	}
	p.cursor = Pt(p.params[len(p.params)-2], p.params[len(p.params)-1])
	p.dirt()
}

// Arc adds a circular arc centered on (x, y) with radius r. See
// [Path.Ellipse].
func (p *Path) Arc(x, y, r, startAngle, endAngle float64, anticlockwise bool) {
	p.Ellipse(x, y, r, r, 0, startAngle, endAngle, anticlockwise)
}

// ArcTo adds a circular arc of radius r that is tangent to the line from the
// current point to (x1, y1) and to the line from (x1, y1) to (x2, y2), as
// with the arcTo operation of the HTML canvas. See [Path.EllipticalArcTo].
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	p.EllipticalArcTo(x1, y1, x2, y2, r, r, 0)
}

// EllipticalArcTo is like [Path.ArcTo] but uses an ellipse with radii rx and
// ry, rotated by rotation radians.
//
// On an empty path it moves to (x1, y1). If either radius is zero, or the
// current point, (x1, y1) and (x2, y2) are collinear, it draws a straight
// line to (x1, y1) instead. Otherwise the current point is joined to the
// first tangent point with a straight line and the arc ends at the second
// tangent point.
func (p *Path) EllipticalArcTo(x1, y1, x2, y2, rx, ry, rotation float64) {
	if !p.hasCursor {
		p.MoveTo(x1, y1)
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(x1, y1)
		return
	}

	x0, y0 := p.cursor.X-x1, p.cursor.Y-y1
	dx2, dy2 := x2-x1, y2-y1
	area := dx2*y0 - dy2*x0
	if area == 0 {
		p.LineTo(x1, y1)
		return
	}

	// Work in the frame where the ellipse is the unit circle, with the corner
	// at the origin.
	sin, cos := math.Sin(rotation), math.Cos(rotation)
	toLocal := func(x, y float64) Vec2 {
		return Vec2{(cos*x + sin*y) / rx, (-sin*x + cos*y) / ry}
	}
	toWorld := func(v Vec2) Point {
		return Pt(x1+cos*rx*v.X-sin*ry*v.Y, y1+sin*rx*v.X+cos*ry*v.Y)
	}
	u0 := toLocal(x0, y0)
	u2 := toLocal(dx2, dy2)
	l0, l2 := u0.Hypot(), u2.Hypot()

	// The center lies on the bisector of the corner, at distance
	// 1/sin(θ/2) from it for a corner angle of θ.
	theta := math.Atan2(math.Abs(u0.Cross(u2)), u0.Dot(u2))
	c := u0.Mul(l2).Add(u2.Mul(l0)).Normalize().Mul(1 / math.Sin(theta/2))

	t0 := u0.Mul(c.Dot(u0) / u0.Dot(u0))
	t2 := u2.Mul(c.Dot(u2) / u2.Dot(u2))
	startAngle := t0.Sub(c).Angle()
	endAngle := t2.Sub(c).Angle()
	if area > 0 {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	} else if startAngle < endAngle {
		startAngle += 2 * math.Pi
	}

	center := toWorld(c)
	p.Ellipse(center.X, center.Y, rx, ry, rotation, startAngle, endAngle, area < 0)
}

// ArcSVG adds an elliptical arc from the current point to (x2, y2) as
// described by the SVG path data "A" command: radii rx and ry, the ellipse's
// x axis rotated by rotation radians, and the largeArc and sweep flags
// selecting one of the four candidate arcs.
//
// Negative radii are made positive, and radii too small to reach (x2, y2)
// are scaled up uniformly until they do. A zero radius draws a straight line.
// An arc ending at the current point draws nothing. On an empty path, ArcSVG
// behaves like LineTo.
func (p *Path) ArcSVG(rx, ry, rotation float64, largeArc, sweep bool, x2, y2 float64) {
	if !p.hasCursor {
		p.LineTo(x2, y2)
		return
	}
	p.arcSVGFrom(p.cursor.X, p.cursor.Y, rx, ry, rotation, largeArc, sweep, x2, y2)
}

// arcSVGFrom converts the endpoint parametrization of an arc starting at
// (x1, y1) to its center parametrization.
func (p *Path) arcSVGFrom(x1, y1, rx, ry, rotation float64, largeArc, sweep bool, x2, y2 float64) {
	if x1 == x2 && y1 == y2 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(x2, y2)
		return
	}

	cos, sin := math.Cos(rotation), math.Sin(rotation)
	hdx := (x1 - x2) / 2
	hdy := (y1 - y2) / 2
	// Midpoint-relative start point in the ellipse's frame.
	xp := hdx*cos + hdy*sin
	yp := -hdx*sin + hdy*cos

	ratX := xp / rx
	ratY := yp / ry
	lambda := ratX*ratX + ratY*ratY
	cx := (x1 + x2) / 2
	cy := (y1 + y2) / 2
	var cpx, cpy float64
	if lambda >= 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
		Logger().Debug("arc radii scaled up to reach end point", "rx", rx, "ry", ry)
	} else {
		lambda = math.Sqrt(1/lambda - 1)
		if largeArc == sweep {
			lambda = -lambda
		}
		cpx = lambda * rx * ratY
		cpy = -lambda * ry * ratX
		cx += cos*cpx - sin*cpy
		cy += sin*cpx + cos*cpy
	}

	theta1 := math.Atan2((yp-cpy)/ry, (xp-cpx)/rx)
	deltaTheta := math.Atan2((-yp-cpy)/ry, (-xp-cpx)/rx) - theta1
	if sweep {
		if deltaTheta <= 0 {
			deltaTheta += 2 * math.Pi
		}
	} else if deltaTheta >= 0 {
		deltaTheta -= 2 * math.Pi
	}
	p.Ellipse(cx, cy, rx, ry, rotation, theta1, theta1+deltaTheta, !sweep)
}
