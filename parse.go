package drawpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ParseError describes malformed SVG path data.
type ParseError struct {
	// Offset is the byte offset of the offending token.
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("drawpath: invalid path data at offset %d: %s", e.Offset, e.Msg)
}

type cmdKind uint8

const (
	cmdMove cmdKind = iota
	cmdLine
	cmdHoriz
	cmdVert
	cmdCubic
	cmdSmoothCubic
	cmdQuad
	cmdSmoothQuad
	cmdArc
	cmdClose
)

var cmdArity = [...]int{
	cmdMove:        2,
	cmdLine:        2,
	cmdHoriz:       1,
	cmdVert:        1,
	cmdCubic:       6,
	cmdSmoothCubic: 4,
	cmdQuad:        4,
	cmdSmoothQuad:  2,
	cmdArc:         7,
	cmdClose:       0,
}

// decodeCommand maps a path data command letter to its kind. Lower case
// letters are relative.
func decodeCommand(c byte) (kind cmdKind, relative bool, ok bool) {
	switch c | 0x20 {
	case 'm':
		kind = cmdMove
	case 'l':
		kind = cmdLine
	case 'h':
		kind = cmdHoriz
	case 'v':
		kind = cmdVert
	case 'c':
		kind = cmdCubic
	case 's':
		kind = cmdSmoothCubic
	case 'q':
		kind = cmdQuad
	case 't':
		kind = cmdSmoothQuad
	case 'a':
		kind = cmdArc
	case 'z':
		kind = cmdClose
	default:
		return 0, false, false
	}
	return kind, c >= 'a', true
}

type token struct {
	off int
	// cmd is the command letter, or 0 for numbers.
	cmd byte
	num float64
}

func isPathSpace(c byte) bool {
	switch c {
	case ' ', ',', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// tokenize splits path data into command letters and numbers. On error it
// returns the tokens scanned so far.
func tokenize(b []byte) ([]token, *ParseError) {
	var toks []token
	for i := 0; i < len(b); {
		c := b[i]
		if isPathSpace(c) {
			i++
			continue
		}
		if _, _, ok := decodeCommand(c); ok {
			toks = append(toks, token{off: i, cmd: c})
			i++
			continue
		}
		f, n, err := scanNumber(b[i:])
		if err != nil {
			return toks, &ParseError{Offset: i, Msg: err.Error()}
		}
		toks = append(toks, token{off: i, num: f})
		i += n
	}
	return toks, nil
}

// scanNumber reads one number from the start of b. The extent of the number
// is determined by the path data number grammar; its value is then rounded
// correctly.
func scanNumber(b []byte) (float64, int, error) {
	_, n := pstrconv.ParseFloat(b)
	if n == 0 {
		if c := b[0]; c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
			return 0, 0, fmt.Errorf("unknown command %q", c)
		}
		return 0, 0, fmt.Errorf("unexpected character %q", b[0])
	}
	f, err := strconv.ParseFloat(string(b[:n]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("number %q out of range", b[:n])
	}
	return f, n, nil
}

// ParseSVGPath parses SVG path data into a new path.
//
// Relative, horizontal, vertical, smooth and quadratic commands are resolved
// to absolute lines and cubic curves, and arcs are approximated with cubic
// curves. If the data is malformed, the returned error is a [*ParseError]
// and the path holds everything parsed before the offending token.
func ParseSVGPath(s string) (*Path, error) {
	p := &Path{}
	err := p.FromSVGString(s)
	return p, err
}

// ParseSVGTokens is like [ParseSVGPath] but takes path data that has already
// been split into tokens.
func ParseSVGTokens(tokens []string) (*Path, error) {
	return ParseSVGPath(strings.Join(tokens, ","))
}

// FromSVGString replaces the contents of p with the parsed path data s. See
// [ParseSVGPath].
func (p *Path) FromSVGString(s string) error {
	p.Clear()
	toks, scanErr := tokenize([]byte(s))
	ps := pathParser{p: p, toks: toks, end: len(s)}
	err := ps.run()
	// A scan error truncates the tokens, so report whichever problem comes
	// first in the input.
	if scanErr != nil && (err == nil || scanErr.Offset <= err.Offset) {
		err = scanErr
	}
	if err != nil {
		Logger().Debug("path data rejected", "offset", err.Offset, "msg", err.Msg)
		return err
	}
	return nil
}

type pathParser struct {
	p    *Path
	toks []token
	pos  int
	end  int

	// Current point, as defined by path data. Unlike the path's cursor it
	// returns to the subpath start after a close.
	x, y float64
	// Last control point of the previous segment, for the smooth commands.
	ctrlX, ctrlY float64
	prev         cmdKind
}

func (ps *pathParser) run() *ParseError {
	ps.prev = cmdClose
	for ps.pos < len(ps.toks) {
		t := ps.toks[ps.pos]
		if t.cmd == 0 {
			return &ParseError{Offset: t.off, Msg: "expected command"}
		}
		ps.pos++
		kind, rel, _ := decodeCommand(t.cmd)
		if kind == cmdClose {
			ps.p.ClosePath()
			ps.x, ps.y = ps.p.startX, ps.p.startY
			ps.prev = cmdClose
			continue
		}
		var args [7]float64
		arity := cmdArity[kind]
		first := true
		for {
			for i := range arity {
				if ps.pos >= len(ps.toks) || ps.toks[ps.pos].cmd != 0 {
					off := ps.end
					if ps.pos < len(ps.toks) {
						off = ps.toks[ps.pos].off
					}
					return &ParseError{
						Offset: off,
						Msg:    fmt.Sprintf("command %q needs %d parameters, got %d", t.cmd, arity, i),
					}
				}
				args[i] = ps.toks[ps.pos].num
				ps.pos++
			}
			ps.apply(kind, rel, first, args[:arity])
			first = false
			if ps.pos >= len(ps.toks) || ps.toks[ps.pos].cmd != 0 {
				break
			}
		}
	}
	return nil
}

func (ps *pathParser) apply(kind cmdKind, rel, first bool, a []float64) {
	p := ps.p
	abs := func(x, y float64) (float64, float64) {
		if rel {
			return x + ps.x, y + ps.y
		}
		return x, y
	}

	switch kind {
	case cmdMove:
		x, y := abs(a[0], a[1])
		if first {
			p.MoveTo(x, y)
		} else {
			// Subsequent pairs are implicit line commands.
			p.LineTo(x, y)
		}
		ps.x, ps.y = x, y

	case cmdLine:
		x, y := abs(a[0], a[1])
		p.LineTo(x, y)
		ps.x, ps.y = x, y

	case cmdHoriz:
		x := a[0]
		if rel {
			x += ps.x
		}
		p.LineTo(x, ps.y)
		ps.x = x

	case cmdVert:
		y := a[0]
		if rel {
			y += ps.y
		}
		p.LineTo(ps.x, y)
		ps.y = y

	case cmdCubic, cmdSmoothCubic:
		var x1, y1 float64
		if kind == cmdCubic {
			x1, y1 = abs(a[0], a[1])
			a = a[2:]
		} else if ps.prev == cmdCubic || ps.prev == cmdSmoothCubic {
			x1, y1 = 2*ps.x-ps.ctrlX, 2*ps.y-ps.ctrlY
		} else {
			x1, y1 = ps.x, ps.y
		}
		x2, y2 := abs(a[0], a[1])
		x, y := abs(a[2], a[3])
		p.BezierCurveTo(x1, y1, x2, y2, x, y)
		ps.ctrlX, ps.ctrlY = x2, y2
		ps.x, ps.y = x, y

	case cmdQuad, cmdSmoothQuad:
		var qx, qy float64
		if kind == cmdQuad {
			qx, qy = abs(a[0], a[1])
			a = a[2:]
		} else if ps.prev == cmdQuad || ps.prev == cmdSmoothQuad {
			qx, qy = 2*ps.x-ps.ctrlX, 2*ps.y-ps.ctrlY
		} else {
			qx, qy = ps.x, ps.y
		}
		x, y := abs(a[0], a[1])
		if p.hasCursor {
			p.quadraticCurveFrom(ps.x, ps.y, qx, qy, x, y)
		} else {
			p.QuadraticCurveTo(qx, qy, x, y)
		}
		ps.ctrlX, ps.ctrlY = qx, qy
		ps.x, ps.y = x, y

	case cmdArc:
		x, y := abs(a[5], a[6])
		rotation := a[2] * math.Pi / 180
		if p.hasCursor {
			p.arcSVGFrom(ps.x, ps.y, a[0], a[1], rotation, a[3] != 0, a[4] != 0, x, y)
		} else {
			p.LineTo(x, y)
		}
		ps.x, ps.y = x, y
	}

	if kind == cmdMove {
		ps.prev = cmdLine
	} else {
		ps.prev = kind
	}
}
