package svgdoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/drawpath"
)

// ParseTransform parses the value of an SVG transform attribute. The
// transform functions are composed left to right, so that the rightmost one
// is applied to coordinates first.
func ParseTransform(s string) (drawpath.Affine, error) {
	m := drawpath.Identity
	rest := s
	for {
		rest = strings.TrimLeft(rest, " \t\r\n\f,")
		if rest == "" {
			return m, nil
		}
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return drawpath.Identity, fmt.Errorf("transform %q: missing '('", s)
		}
		end := strings.IndexByte(rest[open:], ')')
		if end < 0 {
			return drawpath.Identity, fmt.Errorf("transform %q: missing ')'", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumbers(rest[open+1 : open+end])
		if err != nil {
			return drawpath.Identity, fmt.Errorf("transform %q: %w", s, err)
		}
		t, err := transformFunc(name, args)
		if err != nil {
			return drawpath.Identity, fmt.Errorf("transform %q: %w", s, err)
		}
		m = m.Mul(t)
		rest = rest[open+end+1:]
	}
}

func transformFunc(name string, args []float64) (drawpath.Affine, error) {
	bad := func() (drawpath.Affine, error) {
		return drawpath.Identity, fmt.Errorf("%s does not take %d arguments", name, len(args))
	}
	deg := func(a float64) float64 { return a * math.Pi / 180 }

	switch name {
	case "matrix":
		if len(args) != 6 {
			return bad()
		}
		return drawpath.NewAffine([6]float64(args)), nil
	case "translate":
		switch len(args) {
		case 1:
			return drawpath.Translate(drawpath.Vec(args[0], 0)), nil
		case 2:
			return drawpath.Translate(drawpath.Vec(args[0], args[1])), nil
		}
		return bad()
	case "scale":
		switch len(args) {
		case 1:
			return drawpath.Scale(args[0], args[0]), nil
		case 2:
			return drawpath.Scale(args[0], args[1]), nil
		}
		return bad()
	case "rotate":
		switch len(args) {
		case 1:
			return drawpath.Rotate(deg(args[0])), nil
		case 3:
			return drawpath.RotateAbout(deg(args[0]), drawpath.Pt(args[1], args[2])), nil
		}
		return bad()
	case "skewX":
		if len(args) != 1 {
			return bad()
		}
		return drawpath.Skew(math.Tan(deg(args[0])), 0), nil
	case "skewY":
		if len(args) != 1 {
			return bad()
		}
		return drawpath.Skew(0, math.Tan(deg(args[0]))), nil
	}
	return drawpath.Identity, fmt.Errorf("unknown transform function %q", name)
}

func isSep(c byte) bool {
	switch c {
	case ' ', ',', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// scanFloat reads a number from the start of b and returns it along with the
// number of bytes consumed, which is zero if b does not start with a number.
func scanFloat(b []byte) (float64, int, error) {
	_, n := pstrconv.ParseFloat(b)
	if n == 0 {
		return 0, 0, nil
	}
	f, err := strconv.ParseFloat(string(b[:n]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("number %q out of range", b[:n])
	}
	return f, n, nil
}

// parseNumbers parses a list of numbers separated by whitespace or commas.
// On error it returns the numbers read so far.
func parseNumbers(s string) ([]float64, error) {
	var out []float64
	b := []byte(s)
	for i := 0; i < len(b); {
		if isSep(b[i]) {
			i++
			continue
		}
		f, n, err := scanFloat(b[i:])
		if err != nil {
			return out, err
		}
		if n == 0 {
			return out, fmt.Errorf("unexpected character %q at offset %d", b[i], i)
		}
		out = append(out, f)
		i += n
	}
	return out, nil
}

// parseLength parses an SVG length. Units are accepted but ignored, so that
// every length is taken to be in user units.
func parseLength(s string) (float64, error) {
	b := []byte(strings.TrimSpace(s))
	f, n, err := scanFloat(b)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	switch unit := string(b[n:]); unit {
	case "", "px", "pt", "pc", "mm", "cm", "in", "em", "ex", "%":
	default:
		return f, fmt.Errorf("unknown unit %q in length %q", unit, s)
	}
	return f, nil
}
