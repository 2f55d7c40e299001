package drawpath

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [Path.WriteSVG].
type SVGOptions struct {
	// The maximum number of digits after the decimal point with which to
	// format coordinates. A value of 0 chooses the shortest representation
	// that parses back to the same float64.
	MaxPrecision int
}

// String returns the path as SVG path data using only absolute M, L, C and
// Z commands, with no separators between commands. Numbers use the shortest
// representation that round-trips, so parsing the result with
// [ParseSVGPath] reproduces the path's parameters exactly.
//
// The result is cached until the path is modified.
func (p *Path) String() string {
	if p.dirty {
		sb := &strings.Builder{}
		p.WriteSVG(sb, SVGOptions{})
		p.svg = sb.String()
		p.dirty = false
	}
	return p.svg
}

// WriteSVG writes the path as SVG path data to w, in the same form as
// [Path.String].
func (p *Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	var buf []byte
	num := func(n float64) {
		buf = appendNumber(buf, n, opts.MaxPrecision)
	}
	j := 0
	for _, cmd := range p.commands {
		buf = append(buf[:0], byte(cmd))
		for k := range cmd.Arity() {
			switch {
			case k == 0:
			case k%2 == 1:
				buf = append(buf, ',')
			default:
				buf = append(buf, ' ')
			}
			num(p.params[j+k])
		}
		j += cmd.Arity()
		if _, err = w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// FormatNumber formats n the way [Path.WriteSVG] formats coordinates.
func (opts SVGOptions) FormatNumber(n float64) string {
	return string(appendNumber(nil, n, opts.MaxPrecision))
}

// appendNumber formats n in plain decimal notation, switching to exponent
// notation for very large and very small magnitudes.
func appendNumber(dst []byte, n float64, maxPrec int) []byte {
	if maxPrec > 0 {
		start := len(dst)
		dst = strconv.AppendFloat(dst, n, 'f', maxPrec, 64)
		if i := strings.IndexByte(string(dst[start:]), '.'); i >= 0 {
			for dst[len(dst)-1] == '0' {
				dst = dst[:len(dst)-1]
			}
			if dst[len(dst)-1] == '.' {
				dst = dst[:len(dst)-1]
			}
		}
		if string(dst[start:]) == "-0" {
			dst = append(dst[:start], '0')
		}
		return dst
	}
	if abs := math.Abs(n); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return strconv.AppendFloat(dst, n, 'g', -1, 64)
	}
	return strconv.AppendFloat(dst, n, 'f', -1, 64)
}
