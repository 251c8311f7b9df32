package gm

import "math"

// DefaultThreshold is the tolerance used by Affine.Equals.
const DefaultThreshold = 1e-6

// machine epsilon for float64
const epsilon = 0x1p-52

// Affine represents an affine transformation with six coefficients. It maps
// a point (x, y) to (A·x + C·y + Tx, B·x + D·y + Ty).
//
// Unlike Vec, an Affine is mutable: Translate, Scale, Rotate and Multiply
// update the receiver and return it, so that calls can be chained while walking
// down a transform chain. Use Clone before composing a transform that is shared
// with someone else. An Affine must not be mutated concurrently.
//
// The zero value is not the identity. Use NewAffine or IdentityAffine.
type Affine struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// NewAffine returns a new identity transformation.
func NewAffine() *Affine {
	return &Affine{A: 1, D: 1}
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() *Affine {
	return NewAffine()
}

// ZeroAffine returns a transformation with all coefficients set to zero.
func ZeroAffine() *Affine {
	return &Affine{}
}

func AffineOf(a, b, c, d, tx, ty float64) *Affine {
	return &Affine{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}
}

// AffineWithLinear builds a transformation from its linear part and a translation.
func AffineWithLinear(linear Mat, translation Vec) *Affine {
	return &Affine{
		A:  linear.XAxis.X,
		B:  linear.YAxis.X,
		C:  linear.XAxis.Y,
		D:  linear.YAxis.Y,
		Tx: translation.X,
		Ty: translation.Y,
	}
}

// Clone returns an independent copy of m.
func (m *Affine) Clone() *Affine {
	clone := *m
	return &clone
}

// Linear returns the rotation, scale and shear part of the transformation.
func (m *Affine) Linear() Mat {
	return Mat{
		XAxis: Vec{X: m.A, Y: m.C},
		YAxis: Vec{X: m.B, Y: m.D},
	}
}

func (m *Affine) Translation() Vec {
	return Vec{X: m.Tx, Y: m.Ty}
}

// Translate moves the transformation by the given offset.
func (m *Affine) Translate(offset VecLike) *Affine {
	v := Wrap(offset)
	m.Tx += v.X
	m.Ty += v.Y
	return m
}

// Scale scales the x column (A, B) by v.X and the y column (C, D) by v.Y.
// The translation is not affected.
func (m *Affine) Scale(scale VecLike) *Affine {
	v := Wrap(scale)
	m.A *= v.X
	m.B *= v.X
	m.C *= v.Y
	m.D *= v.Y
	return m
}

// Rotate rotates the transformation by the given angle. This is the same as
// multiplying with a pure rotation, the translation is rotated too. Thus
// translating first and rotating second does not give the same result as
// rotating first and translating second.
//
// Matrix types that rotate only the linear part keep Tx and Ty unchanged.
// That result is AffineWithLinear(rotated.Linear(), m.Translation()), where
// rotated is AffineWithLinear(m.Linear(), VecZero).Rotate(angle).
func (m *Affine) Rotate(angle Rad) *Affine {
	sin, cos := math.Sincos(float64(angle))

	a, b, c, d, tx, ty := m.A, m.B, m.C, m.D, m.Tx, m.Ty

	m.A = a*cos - b*sin
	m.B = a*sin + b*cos
	m.C = c*cos - d*sin
	m.D = c*sin + d*cos
	m.Tx = tx*cos - ty*sin
	m.Ty = tx*sin + ty*cos

	return m
}

// Multiply sets m to m · other. The resulting transformation has the same
// effect as transforming a point first by m and then by other.
func (m *Affine) Multiply(other *Affine) *Affine {
	a, b, c, d, tx, ty := m.A, m.B, m.C, m.D, m.Tx, m.Ty

	m.A = a*other.A + b*other.C
	m.B = a*other.B + b*other.D
	m.C = c*other.A + d*other.C
	m.D = c*other.B + d*other.D
	m.Tx = tx*other.A + ty*other.C + other.Tx
	m.Ty = tx*other.B + ty*other.D + other.Ty

	return m
}

func (m *Affine) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns a new inverse of the transformation.
//
// A singular transformation (determinant of exactly zero) silently yields the
// identity. Use TryInverse or check Determinant to detect that case.
func (m *Affine) Inverse() *Affine {
	inverse, ok := m.TryInverse()
	if !ok {
		return NewAffine()
	}

	return inverse
}

// TryInverse returns the inverse of the transformation if possible.
func (m *Affine) TryInverse() (inverse *Affine, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return nil, false
	}

	inverse = &Affine{
		A:  m.D / det,
		B:  -m.B / det,
		C:  -m.C / det,
		D:  m.A / det,
		Tx: (m.C*m.Ty - m.D*m.Tx) / det,
		Ty: (m.B*m.Tx - m.A*m.Ty) / det,
	}

	return inverse, true
}

// IsIdentity reports whether m is exactly the identity, without any tolerance.
func (m *Affine) IsIdentity() bool {
	return m.A == 1 && m.B == 0 &&
		m.C == 0 && m.D == 1 &&
		m.Tx == 0 && m.Ty == 0
}

// Equals compares both transformations using the DefaultThreshold.
func (m *Affine) Equals(other *Affine) bool {
	return m.EqualsWithin(other, DefaultThreshold)
}

// EqualsWithin reports whether every coefficient of m differs from the
// matching coefficient of other by at most threshold plus machine epsilon.
func (m *Affine) EqualsWithin(other *Affine, threshold float64) bool {
	limit := threshold + epsilon

	return math.Abs(m.A-other.A) <= limit &&
		math.Abs(m.B-other.B) <= limit &&
		math.Abs(m.C-other.C) <= limit &&
		math.Abs(m.D-other.D) <= limit &&
		math.Abs(m.Tx-other.Tx) <= limit &&
		math.Abs(m.Ty-other.Ty) <= limit
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (m *Affine) Transform(point Vec) Vec {
	return Vec{
		X: m.A*point.X + m.C*point.Y + m.Tx,
		Y: m.B*point.X + m.D*point.Y + m.Ty,
	}
}

// TransformVec applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component of the Affine transform.
// The vector will only be rotated and scaled.
func (m *Affine) TransformVec(vec Vec) Vec {
	return m.Linear().Transform(vec)
}

// Coefficients returns the six coefficients in the order a, b, c, d, tx, ty.
func (m *Affine) Coefficients() Coefficients {
	return Coefficients{m.A, m.B, m.C, m.D, m.Tx, m.Ty}
}
