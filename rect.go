package drawpath

import "math"

// Rect is an axis-aligned box given by its top-left corner (X0, Y0) and its
// bottom-right corner (X1, Y1). Bounding boxes computed by Path always have
// X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// emptyBounds contains nothing; the first UnionPoint yields a zero-area box.
var emptyBounds = Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}

// NewRectFromPoints returns the box spanned by two opposite corners.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs orders the corners so that width and height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{min(r.X0, r.X1), min(r.Y0, r.Y1), max(r.X0, r.X1), max(r.Y0, r.Y1)}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) Origin() Point   { return Point{r.X0, r.Y0} }

// Contains reports whether pt is inside r. The left and top edges belong to
// r, the right and bottom ones do not.
func (r Rect) Contains(pt Point) bool {
	return r.X0 <= pt.X && pt.X < r.X1 && r.Y0 <= pt.Y && pt.Y < r.Y1
}

// Union returns the smallest box enclosing both r and o, which must be
// normalized.
func (r Rect) Union(o Rect) Rect {
	return Rect{min(r.X0, o.X0), min(r.Y0, o.Y0), max(r.X1, o.X1), max(r.Y1, o.Y1)}
}

// UnionPoint grows r to include pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{min(r.X0, pt.X), min(r.Y0, pt.Y), max(r.X1, pt.X), max(r.Y1, pt.Y)}
}

// Dimension converts r to origin-and-size form.
func (r Rect) Dimension() Dimension {
	return Dimension{X: r.X0, Y: r.Y0, Width: r.Width(), Height: r.Height()}
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}
