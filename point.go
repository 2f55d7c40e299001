package drawpath

import (
	"fmt"
	"math"
)

// Point is a position in the path's coordinate space. The y axis points
// down, as on a canvas.
type Point struct {
	X, Y float64
}

// Vec2 is a displacement between two points.
type Vec2 struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (pt Point) String() string { return fmt.Sprintf("(%g, %g)", pt.X, pt.Y) }
func (v Vec2) String() string   { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

func (pt Point) Translate(v Vec2) Point { return Point{pt.X + v.X, pt.Y + v.Y} }

// Sub returns the displacement from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{pt.X - o.X, pt.Y - o.Y} }

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Distance(o Point) float64 { return math.Hypot(pt.X-o.X, pt.Y-o.Y) }

// Transform maps the point through aff.
func (pt Point) Transform(aff Affine) Point {
	x, y := aff.apply(pt.X, pt.Y)
	return Point{x, y}
}

func (pt Point) IsInf() bool { return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) }
func (pt Point) IsNaN() bool { return math.IsNaN(pt.X) || math.IsNaN(pt.Y) }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Negate() Vec2       { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Hypot() float64     { return math.Hypot(v.X, v.Y) }
func (v Vec2) Angle() float64     { return math.Atan2(v.Y, v.X) }

// Cross returns the z component of the cross product. It is positive when o
// is clockwise from v in y-down coordinates.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Normalize scales v to unit length. The zero vector becomes NaN.
func (v Vec2) Normalize() Vec2 { return v.Mul(1 / v.Hypot()) }
