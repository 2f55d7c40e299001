package drawpath

import "math"

// Dimension is an axis-aligned bounding box in origin-and-size form.
type Dimension struct {
	X, Y          float64
	Width, Height float64
}

func (d Dimension) Left() float64   { return d.X }
func (d Dimension) Top() float64    { return d.Y }
func (d Dimension) Right() float64  { return d.X + d.Width }
func (d Dimension) Bottom() float64 { return d.Y + d.Height }

// Rect converts d to its two-corner form.
func (d Dimension) Rect() Rect {
	return Rect{d.X, d.Y, d.X + d.Width, d.Y + d.Height}
}

// Dimension returns the tight bounding box of the path. Interior extrema of
// curves are included, their control points are not. The bounding box of an
// empty path is the zero value.
func (p *Path) Dimension() Dimension {
	return p.Bounds().Dimension()
}

// DimensionWithTransform returns the tight bounding box of the path after
// mapping it through aff. The path itself is not modified.
func (p *Path) DimensionWithTransform(aff Affine) Dimension {
	return p.BoundsWithTransform(aff).Dimension()
}

// Bounds is like [Path.Dimension] but returns the extents as a [Rect].
func (p *Path) Bounds() Rect {
	return p.bounds(func(x, y float64) (float64, float64) { return x, y })
}

// BoundsWithTransform is like [Path.DimensionWithTransform] but returns the
// extents as a [Rect].
func (p *Path) BoundsWithTransform(aff Affine) Rect {
	if aff.IsIdentity() {
		return p.Bounds()
	}
	return p.bounds(aff.apply)
}

func (p *Path) bounds(mapPt func(x, y float64) (float64, float64)) Rect {
	if len(p.commands) == 0 {
		return Rect{}
	}
	r := emptyBounds
	var lastX, lastY, startX, startY float64
	params := p.params
	j := 0
	for _, cmd := range p.commands {
		switch cmd {
		case MoveToKind:
			startX, startY = mapPt(params[j], params[j+1])
			lastX, lastY = startX, startY
			r = r.UnionPoint(Pt(lastX, lastY))
		case LineToKind:
			lastX, lastY = mapPt(params[j], params[j+1])
			r = r.UnionPoint(Pt(lastX, lastY))
		case CurveToKind:
			x1, y1 := mapPt(params[j], params[j+1])
			x2, y2 := mapPt(params[j+2], params[j+3])
			x3, y3 := mapPt(params[j+4], params[j+5])
			minX, maxX := curveDimen(lastX, x1, x2, x3)
			minY, maxY := curveDimen(lastY, y1, y2, y3)
			r.X0 = min(r.X0, minX)
			r.Y0 = min(r.Y0, minY)
			r.X1 = max(r.X1, maxX)
			r.Y1 = max(r.Y1, maxY)
			lastX, lastY = x3, y3
		case ClosePathKind:
			lastX, lastY = startX, startY
		}
		j += cmd.Arity()
	}
	return r
}

// curveDimen returns the range covered by one coordinate of the cubic Bézier
// curve with coordinates a, b, c and d.
func curveDimen(a, b, c, d float64) (lo, hi float64) {
	// Coefficients of the derivative, a quadratic in t.
	qa := 3 * (-a + 3*(b-c) + d)
	qb := 6 * (a - 2*b + c)
	qc := -3 * (a - b)

	lo, hi = min(a, d), max(a, d)
	consider := func(t float64) {
		if t > 0 && t < 1 {
			v := Interpolate(a, b, c, d, t)
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}

	if qa == 0 {
		if qb != 0 {
			consider(-qc / qb)
		}
		return lo, hi
	}
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return lo, hi
	}
	delta := math.Sqrt(disc)
	consider((delta - qb) / 2 / qa)
	if delta != 0 {
		consider((-delta - qb) / 2 / qa)
	}
	return lo, hi
}

// Interpolate evaluates one coordinate of the cubic Bézier curve with
// coordinates a, b, c and d at t. It returns a and d exactly at t = 0 and
// t = 1.
func Interpolate(a, b, c, d, t float64) float64 {
	if t == 0 {
		return a
	}
	if t == 1 {
		return d
	}
	r := (1 - t) / t
	return t * t * t * (d + r*(3*c+r*(3*b+r*a)))
}
