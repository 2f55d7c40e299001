package drawpath

import "math"

// Affine is a 2D affine transform in the coefficient order of the SVG
// matrix(a, b, c, d, e, f) function and of the canvas setTransform call:
//
//	x' = N0·x + N2·y + N4
//	y' = N1·x + N3·y + N5
//
// Canvas-style APIs name the coefficients xx, xy, yx, yy, dx and dy.
//
// A.Mul(B) applies B first, then A.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

var Identity = Affine{1, 0, 0, 1, 0, 0}

func NewAffine(n [6]float64) Affine { return Affine{n[0], n[1], n[2], n[3], n[4], n[5]} }
func Scale(x, y float64) Affine     { return Affine{x, 0, 0, y, 0, 0} }
func Translate(v Vec2) Affine       { return Affine{1, 0, 0, 1, v.X, v.Y} }

// Rotate rotates by th radians, turning +x towards +y. With y pointing
// down that is clockwise on screen.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout rotates by th radians around center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Skew shears by the factors x (horizontal) and y (vertical), which are the
// tangents of the shear angles.
func Skew(x, y float64) Affine { return Affine{1, y, x, 1, 0, 0} }

func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// IsIdentity reports whether aff is exactly the identity. Paths skip work
// for it.
func (aff Affine) IsIdentity() bool { return aff == Identity }

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

func (aff Affine) ThenRotate(th float64) Affine  { return Rotate(th).Mul(aff) }
func (aff Affine) ThenScale(x, y float64) Affine { return Scale(x, y).Mul(aff) }
func (aff Affine) PreTranslate(v Vec2) Affine    { return aff.Mul(Translate(v)) }

func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

func (aff Affine) Determinant() float64 { return aff.N0*aff.N3 - aff.N1*aff.N2 }

// Invert returns the inverse transform. Singular transforms yield NaN or
// infinite coefficients.
func (aff Affine) Invert() Affine {
	k := 1 / aff.Determinant()
	return Affine{
		N0: k * aff.N3,
		N1: -k * aff.N1,
		N2: -k * aff.N2,
		N3: k * aff.N0,
		N4: k * (aff.N2*aff.N5 - aff.N3*aff.N4),
		N5: k * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// apply maps (x, y). Coordinates are always combined in the order
// x·xx + y·yx + dx so that transformed paths and transformed bounds agree
// bit for bit.
func (aff Affine) apply(x, y float64) (float64, float64) {
	return x*aff.N0 + y*aff.N2 + aff.N4, x*aff.N1 + y*aff.N3 + aff.N5
}
