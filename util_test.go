package drawpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a small absolute tolerance.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

// mustParse parses path data that is known to be valid.
func mustParse(t *testing.T, s string) *Path {
	t.Helper()
	p, err := ParseSVGPath(s)
	if err != nil {
		t.Fatalf("ParseSVGPath(%q): %s", s, err)
	}
	return p
}
