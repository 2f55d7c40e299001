package drawpath

import (
	"errors"
	"math"
	"testing"
)

func TestParseSVGPath(t *testing.T) {
	const (
		M = MoveToKind
		L = LineToKind
		C = CurveToKind
		Z = ClosePathKind
	)
	tests := []struct {
		in     string
		cmds   []Command
		params []float64
	}{
		{"", nil, nil},
		{"  M 1 , 2  ", []Command{M}, []float64{1, 2}},
		{"M1,2L3,4", []Command{M, L}, []float64{1, 2, 3, 4}},
		{"m1 2 l3 4", []Command{M, L}, []float64{1, 2, 4, 6}},
		{"M1 2 3 4 5 6", []Command{M, L, L}, []float64{1, 2, 3, 4, 5, 6}},
		{"m1 2 3 4", []Command{M, L}, []float64{1, 2, 4, 6}},
		{"M1,2M3,4", []Command{M, M}, []float64{1, 2, 3, 4}},
		{"M0,0 l10,0 10,10", []Command{M, L, L}, []float64{0, 0, 10, 0, 20, 10}},
		{"M0 0H10V5h-2v-1", []Command{M, L, L, L, L}, []float64{0, 0, 10, 0, 10, 5, 8, 5, 8, 4}},
		{"M0 0H1 2 3", []Command{M, L, L, L}, []float64{0, 0, 1, 0, 2, 0, 3, 0}},
		{"M-1-2.5L.5.5", []Command{M, L}, []float64{-1, -2.5, 0.5, 0.5}},
		{"M1e2,1E-1", []Command{M}, []float64{100, 0.1}},
		{"M0 0C1 2 3 4 5 6", []Command{M, C}, []float64{0, 0, 1, 2, 3, 4, 5, 6}},
		{"M1 1c1 2 3 4 5 6", []Command{M, C}, []float64{1, 1, 2, 3, 4, 5, 6, 7}},
		{
			"M0 0C1 1 2 2 3 3S5 5 6 6",
			[]Command{M, C, C},
			[]float64{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6},
		},
		{
			"M0 0c1 1 2 2 3 3s2 2 3 3",
			[]Command{M, C, C},
			[]float64{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6},
		},
		{"M0 0S1 1 2 2", []Command{M, C}, []float64{0, 0, 0, 0, 1, 1, 2, 2}},
		{"M0 0L1 1S2 2 3 3", []Command{M, L, C}, []float64{0, 0, 1, 1, 1, 1, 2, 2, 3, 3}},
		{"M0 0Q3 3 6 0", []Command{M, C}, []float64{0, 0, 2, 2, 4, 2, 6, 0}},
		{
			"M0 0Q3 3 6 0T12 0",
			[]Command{M, C, C},
			[]float64{0, 0, 2, 2, 4, 2, 6, 0, 8, -2, 10, -2, 12, 0},
		},
		{
			"M0 0q3 3 6 0t6 0",
			[]Command{M, C, C},
			[]float64{0, 0, 2, 2, 4, 2, 6, 0, 8, -2, 10, -2, 12, 0},
		},
		{"M0 0T6 0", []Command{M, C}, []float64{0, 0, 0, 0, 2, 0, 6, 0}},
		{
			// A smooth curve after a quadratic does not reflect its control point.
			"M0 0Q3 3 6 0S9 3 12 0",
			[]Command{M, C, C},
			[]float64{0, 0, 2, 2, 4, 2, 6, 0, 6, 0, 9, 3, 12, 0},
		},
		{
			"M0 0L10 0L10 10Zl5 5",
			[]Command{M, L, L, Z, L},
			[]float64{0, 0, 10, 0, 10, 10, 5, 5},
		},
		{"M1 1zm2 2", []Command{M, Z, M}, []float64{1, 1, 3, 3}},
		{"L3 4", []Command{M}, []float64{3, 4}},
		{"Z", nil, nil},
	}
	for _, tt := range tests {
		p, err := ParseSVGPath(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", tt.in, err)
			continue
		}
		checkInvariants(t, p)
		if p.Len() != len(tt.cmds) {
			t.Errorf("%q: got commands %v, want %v", tt.in, p.Commands(), tt.cmds)
			continue
		}
		diff(t, tt.cmds, p.commands)
		diff(t, tt.params, p.params)
	}
}

func TestParseArc(t *testing.T) {
	var want Path
	want.MoveTo(0, 0)
	want.ArcSVG(10, 10, 0, false, true, 10, 0)

	for _, s := range []string{
		"M0 0A10 10 0 0 1 10 0",
		"M0,0a10,10,0,0,1,10,0",
		"M0 0A10 10 0 0 2 10 0",
	} {
		got := mustParse(t, s)
		diff(t, want.Commands(), got.Commands())
		diff(t, want.Params(), got.Params())
	}

	deg := 30.0
	var rotated Path
	rotated.MoveTo(0, 0)
	rotated.ArcSVG(10, 5, deg*math.Pi/180, true, false, 10, 5)
	got := mustParse(t, "M0 0A10 5 30 1 0 10 5")
	diff(t, rotated.Params(), got.Params())
}

func TestParseArcAfterClose(t *testing.T) {
	// After a close, the arc starts at the subpath start even though the
	// path's cursor is still on the last drawn point.
	p := mustParse(t, "M0 0L10 0ZA5 5 0 0 1 10 0")
	checkInvariants(t, p)
	cmds := p.Commands()
	if cmds[3] != LineToKind {
		t.Fatalf("got commands %v", cmds)
	}
	params := p.Params()
	assertNear(t, Pt(params[4], params[5]), Pt(0, 0), 1e-12)
	cursor, _ := p.Cursor()
	assertNear(t, cursor, Pt(10, 0), 1e-9)
}

func TestParseSVGTokens(t *testing.T) {
	p, err := ParseSVGTokens([]string{"M", "1", "2", "L", "3", "4", "Z"})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "M1,2L3,4Z", p.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
		kept   int
	}{
		{"M0 0 X1 1", 5, 1},
		{"1 2", 0, 0},
		{"M0", 2, 0},
		{"M0 0L1", 6, 1},
		{"M0 0 L1 2 3", 11, 2},
		{"M0 0 # 1", 5, 1},
		{"M 0 0 L 1 e", 10, 1},
		{"M1e999 0", 1, 0},
		{"M0 0 Z 1 1", 7, 2},
	}
	for _, tt := range tests {
		p, err := ParseSVGPath(tt.in)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: got error %v, want a *ParseError", tt.in, err)
			continue
		}
		if perr.Offset != tt.offset {
			t.Errorf("%q: got offset %d, want %d (%s)", tt.in, perr.Offset, tt.offset, perr)
		}
		if p.Len() != tt.kept {
			t.Errorf("%q: kept %d commands, want %d", tt.in, p.Len(), tt.kept)
		}
		checkInvariants(t, p)
	}
}

func TestFromSVGStringReplaces(t *testing.T) {
	var p Path
	p.Rect(0, 0, 5, 5)
	if err := p.FromSVGString("M1 1L2 2"); err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{1, 1, 2, 2}, p.Params())
	diff(t, "M1,1L2,2", p.String())
}

func TestStringRoundTrip(t *testing.T) {
	var p Path
	p.MoveTo(1.0/3, -0.1)
	p.LineTo(1e22, 1e-7)
	p.BezierCurveTo(math.Pi, math.E, -math.Sqrt2, 0.30000000000000004, 123456789.125, -0)
	p.QuadraticCurveTo(7.7, 8.8, 9.9, 10.1)
	p.ClosePath()
	p.LineTo(-5e-324, math.MaxFloat64)
	p.Arc(3, 4, 2.5, 0.1, 4, false)
	p.ArcTo(10, 10, 20, 0, 3)
	p.MoveTo(0.1, 0.2)
	p.ArcSVG(7, 3, 0.3, true, false, 5, 9)
	p.Rect(1, 2, 3, 4)

	q := mustParse(t, p.String())
	diff(t, p.Commands(), q.Commands())
	diff(t, p.Params(), q.Params())
	diff(t, p.String(), q.String())
}
