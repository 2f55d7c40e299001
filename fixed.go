package drawpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Adder consumes path data in 26.6 fixed-point coordinates. Scanline
// rasterizers and stroke generators commonly accept this interface.
type Adder interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment to the path.
	Line(b fixed.Point26_6)
	// QuadBezier adds a quadratic Bézier curve to the path.
	QuadBezier(b, c fixed.Point26_6)
	// CubeBezier adds a cubic Bézier curve to the path.
	CubeBezier(b, c, d fixed.Point26_6)
	// Stop ends the current curve, closing it if closeLoop is set.
	Stop(closeLoop bool)
}

// ToFixed rounds pt to the nearest 26.6 fixed-point position.
func ToFixed(pt Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(pt.X * 64)),
		Y: fixed.Int26_6(math.Round(pt.Y * 64)),
	}
}

// AddTo streams the path into a. Each subpath becomes one Start ... Stop
// sequence; drawing that continues after a close restarts at the subpath
// start.
func (p *Path) AddTo(a Adder) {
	var start Point
	open, restart := false, false
	begin := func() {
		if restart {
			a.Start(ToFixed(start))
			open, restart = true, false
		}
	}
	for el := range p.Elements() {
		switch el.Command {
		case MoveToKind:
			if open {
				a.Stop(false)
			}
			start = el.P0
			a.Start(ToFixed(start))
			open, restart = true, false
		case LineToKind:
			begin()
			a.Line(ToFixed(el.P0))
		case CurveToKind:
			begin()
			a.CubeBezier(ToFixed(el.P0), ToFixed(el.P1), ToFixed(el.P2))
		case ClosePathKind:
			if open {
				a.Stop(true)
				open, restart = false, true
			}
		}
	}
	if open {
		a.Stop(false)
	}
}
