package drawpath

import (
	"math"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(9.7, 9.3)}
	const t0, t1 = 0.1, 0.8
	sub := c.Subsegment(t0, t1)
	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, sub.Eval(ts), c.Eval(t0+(t1-t0)*ts), epsilon)
	}
}

func TestCubicBezExtrema(t *testing.T) {
	// y = x^2
	q := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	if want := 0.5; math.Abs(extrema[0]-want) > 1e-6 {
		t.Errorf("got extrema %v, want %v", extrema[0], want)
	}

	q = CubicBez{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	extrema, n = q.Extrema()
	if n != 4 {
		t.Fatalf("got %d extrema, expected 4", n)
	}
	for i := 1; i < n; i++ {
		if extrema[i-1] > extrema[i] {
			t.Errorf("extrema not sorted: %v", extrema[:n])
		}
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	diff(t, Rect{0, 0, 1, 0.75}, c.BoundingBox(), approx(1e-12))

	// Monotonic curves are bounded by their end points.
	c = CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	diff(t, Rect{0, 0, 3, 3}, c.BoundingBox())
}

func TestLineCubic(t *testing.T) {
	c := lineCubic(Pt(0, 0), Pt(3, 6))
	diff(t, CubicBez{Pt(0, 0), Pt(1, 2), Pt(2, 4), Pt(3, 6)}, c)
}

func TestCubicBezTransform(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	got := c.Transform(Translate(Vec(10, 20)))
	diff(t, CubicBez{Pt(10, 20), Pt(11, 20), Pt(11, 21), Pt(10, 21)}, got)
}

func TestCubicBezWinding(t *testing.T) {
	// An S-shaped curve going down from (0, 0) to (0, 3).
	c := CubicBez{Pt(0, 0), Pt(4, 1), Pt(-4, 2), Pt(0, 3)}
	tests := []struct {
		pt   Point
		want int
	}{
		{Pt(5, 1.5), -1},
		{Pt(-5, 1.5), 0},
		{Pt(0, 4), 0},
		{Pt(0, -1), 0},
	}
	for _, tt := range tests {
		if got := c.Winding(tt.pt); got != tt.want {
			t.Errorf("Winding(%s) = %d, want %d", tt.pt, got, tt.want)
		}
	}
	// Reversing the curve flips the sign.
	r := CubicBez{c.P3, c.P2, c.P1, c.P0}
	if got := r.Winding(Pt(5, 1.5)); got != 1 {
		t.Errorf("reversed winding = %d, want 1", got)
	}
}

func TestCubicBezIsNaN(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	if c.IsNaN() || c.IsInf() {
		t.Error("finite curve reported as NaN or Inf")
	}
	c.P2.X = math.NaN()
	if !c.IsNaN() {
		t.Error("curve with NaN control point not reported as NaN")
	}
	c.P2.X = math.Inf(-1)
	if !c.IsInf() {
		t.Error("curve with infinite control point not reported as Inf")
	}
}
