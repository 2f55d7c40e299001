package drawpath

import (
	"iter"
	"slices"
)

// Command is a drawing command stored in a [Path].
type Command byte

const (
	MoveToKind    Command = 'M'
	LineToKind    Command = 'L'
	CurveToKind   Command = 'C'
	ClosePathKind Command = 'Z'
)

// Arity returns the number of parameters the command consumes.
func (cmd Command) Arity() int {
	switch cmd {
	case MoveToKind, LineToKind:
		return 2
	case CurveToKind:
		return 6
	default:
		return 0
	}
}

func (cmd Command) String() string {
	return string(rune(cmd))
}

// Element is a single command together with its points. MoveTo and LineTo
// use P0; CurveTo uses P0 and P1 as control points and P2 as the end point.
type Element struct {
	Command    Command
	P0, P1, P2 Point
}

// Path is a sequence of subpaths made of straight lines and cubic Bézier
// curves.
//
// The zero value is an empty path.
type Path struct {
	commands []Command
	params   []float64

	// cursor is the end point of the last drawing command. It is only
	// meaningful if hasCursor is set, which is the case whenever the path
	// holds at least one command.
	cursor    Point
	hasCursor bool
	// startX and startY are the position of the latest move.
	startX, startY float64

	svg   string
	dirty bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

func (p *Path) dirt() { p.dirty = true }

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	c := *p
	c.commands = slices.Clone(p.commands)
	c.params = slices.Clone(p.params)
	return &c
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.commands = p.commands[:0]
	p.params = p.params[:0]
	p.cursor = Point{}
	p.hasCursor = false
	p.startX, p.startY = 0, 0
	p.dirt()
}

// Len returns the number of commands in the path.
func (p *Path) Len() int { return len(p.commands) }

// IsEmpty reports whether the path holds no commands.
func (p *Path) IsEmpty() bool { return len(p.commands) == 0 }

// Commands returns a copy of the path's commands.
func (p *Path) Commands() []Command { return slices.Clone(p.commands) }

// Params returns a copy of the path's parameters.
func (p *Path) Params() []float64 { return slices.Clone(p.params) }

// Cursor returns the end point of the last drawing command. The boolean is
// false for an empty path.
func (p *Path) Cursor() (Point, bool) {
	return p.cursor, p.hasCursor
}

// Start returns the position of the latest move.
func (p *Path) Start() Point {
	return Pt(p.startX, p.startY)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.commands = append(p.commands, MoveToKind)
	p.params = append(p.params, x, y)
	p.startX, p.startY = x, y
	p.cursor = Pt(x, y)
	p.hasCursor = true
	p.dirt()
}

// LineTo draws a straight line to (x, y). On an empty path it behaves like
// MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.hasCursor {
		p.MoveTo(x, y)
		return
	}
	p.commands = append(p.commands, LineToKind)
	p.params = append(p.params, x, y)
	p.cursor = Pt(x, y)
	p.dirt()
}

// BezierCurveTo draws a cubic Bézier curve to (x, y) with control points
// (cx1, cy1) and (cx2, cy2). On an empty path the curve starts at the first
// control point.
func (p *Path) BezierCurveTo(cx1, cy1, cx2, cy2, x, y float64) {
	if !p.hasCursor {
		p.MoveTo(cx1, cy1)
	}
	p.commands = append(p.commands, CurveToKind)
	p.params = append(p.params, cx1, cy1, cx2, cy2, x, y)
	p.cursor = Pt(x, y)
	p.dirt()
}

// QuadraticCurveTo draws a quadratic Bézier curve to (x, y) with control
// point (cx, cy). The curve is stored as the equivalent cubic. On an empty
// path the curve starts at the control point.
func (p *Path) QuadraticCurveTo(cx, cy, x, y float64) {
	if !p.hasCursor {
		p.MoveTo(cx, cy)
	}
	p.quadraticCurveFrom(p.cursor.X, p.cursor.Y, cx, cy, x, y)
}

// quadraticCurveFrom degree-raises the quadratic curve starting at (x0, y0).
func (p *Path) quadraticCurveFrom(x0, y0, cx, cy, x, y float64) {
	c := QuadBez{Pt(x0, y0), Pt(cx, cy), Pt(x, y)}.Raise()
	p.BezierCurveTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
}

// ClosePath closes the current subpath. The cursor is left where it is. On an
// empty path it does nothing.
func (p *Path) ClosePath() {
	if !p.hasCursor {
		return
	}
	p.commands = append(p.commands, ClosePathKind)
	p.dirt()
}

// Rect adds a closed rectangle with corner (x, y), drawn in the order
// (x, y), (x+w, y), (x+w, y+h), (x, y+h). Rectangles with zero width or
// height are skipped.
func (p *Path) Rect(x, y, w, h float64) {
	if w == 0 || h == 0 {
		return
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Elements returns an iterator over the path's commands and their points.
func (p *Path) Elements() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		j := 0
		for _, cmd := range p.commands {
			el := Element{Command: cmd}
			switch cmd {
			case MoveToKind, LineToKind:
				el.P0 = Pt(p.params[j], p.params[j+1])
			case CurveToKind:
				el.P0 = Pt(p.params[j], p.params[j+1])
				el.P1 = Pt(p.params[j+2], p.params[j+3])
				el.P2 = Pt(p.params[j+4], p.params[j+5])
			}
			j += cmd.Arity()
			if !yield(el) {
				return
			}
		}
	}
}

// Segments returns an iterator over every drawn segment as a cubic Bézier
// curve. Lines and closing lines are raised to cubics with control points at
// the thirds, exactly as in [Path.Stripes]. Moves produce no segment.
func (p *Path) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var last, start Point
		for el := range p.Elements() {
			switch el.Command {
			case MoveToKind:
				last, start = el.P0, el.P0
			case LineToKind:
				if !yield(lineCubic(last, el.P0)) {
					return
				}
				last = el.P0
			case CurveToKind:
				if !yield(CubicBez{last, el.P0, el.P1, el.P2}) {
					return
				}
				last = el.P2
			case ClosePathKind:
				if !yield(lineCubic(last, start)) {
					return
				}
				last = start
			}
		}
	}
}
