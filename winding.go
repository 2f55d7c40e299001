package drawpath

// Winding returns the winding number of pt with respect to the path. Every
// subpath is treated as closed, whether or not it ends in a close command.
//
// The sign follows [CubicBez.Winding]: a point inside a subpath drawn
// clockwise in a y-down coordinate system has a winding number of -1.
func (p *Path) Winding(pt Point) int {
	var w int
	var last, start Point
	open := false
	closeSubpath := func() {
		if open && last != start {
			w += lineCubic(last, start).Winding(pt)
		}
		open = false
	}
	for el := range p.Elements() {
		switch el.Command {
		case MoveToKind:
			closeSubpath()
			last, start = el.P0, el.P0
			open = true
		case LineToKind:
			w += lineCubic(last, el.P0).Winding(pt)
			last = el.P0
			open = true
		case CurveToKind:
			w += CubicBez{last, el.P0, el.P1, el.P2}.Winding(pt)
			last = el.P2
			open = true
		case ClosePathKind:
			closeSubpath()
			last = start
		}
	}
	closeSubpath()
	return w
}

// Contains reports whether pt lies inside the path under the non-zero fill
// rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}
