package gm

import (
	"fmt"
	"math"
)

// Vec is a two dimensional vector of float64 values. It is used for points,
// displacements and sizes alike. Width and Height are aliases for X and Y.
//
// Vec has value semantics: every operation returns a new vector, with the
// exception of SetAngle, which updates the vector in place.
type Vec struct {
	X, Y float64
}

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// VecSplat returns a vector with both components set to v.
func VecSplat(v float64) Vec {
	return Vec{X: v, Y: v}
}

// VecFromAngle returns a vector of length 1 pointing in the direction of the given angle.
func VecFromAngle(angle Rad) Vec {
	return VecFromPolar(angle, 1)
}

// VecFromPolar returns the vector with the given angle to the x-axis and length r.
func VecFromPolar(angle Rad, r float64) Vec {
	sin, cos := math.Sincos(float64(angle))
	return Vec{X: r * cos, Y: r * sin}
}

func (v Vec) XY() (float64, float64) {
	return v.X, v.Y
}

func (v Vec) Width() float64 {
	return v.X
}

func (v Vec) Height() float64 {
	return v.Y
}

func (v Vec) Add(other VecLike) Vec {
	o := Wrap(other)
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v Vec) Sub(other VecLike) Vec {
	o := Wrap(other)
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Mul multiplies each component with the matching component of other.
func (v Vec) Mul(other VecLike) Vec {
	o := Wrap(other)
	v.X *= o.X
	v.Y *= o.Y
	return v
}

// Div divides each component by the matching component of other.
// A zero component in other yields ±Inf or NaN as defined by IEEE 754.
func (v Vec) Div(other VecLike) Vec {
	o := Wrap(other)
	v.X /= o.X
	v.Y /= o.Y
	return v
}

func (v Vec) Scale(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) Dot(other VecLike) float64 {
	o := Wrap(other)
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar cross product y1·x2 − x1·y2.
func (v Vec) Cross(other VecLike) float64 {
	o := Wrap(other)
	return v.Y*o.X - v.X*o.Y
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSqr returns the squared length. Use it when only comparing lengths.
func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a vector of length 1 with the same direction.
// The result is NaN for a zero length vector, callers must check for that.
func (v Vec) Normalized() Vec {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v Vec) Negate() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Perpendicular returns the vector rotated by 90° clockwise, (y, -x).
func (v Vec) Perpendicular() Vec {
	return Vec{X: v.Y, Y: -v.X}
}

// Rotate rotates the vector around the origin by the given angle.
func (v Vec) Rotate(angle Rad) Vec {
	return RotationMat(angle).Transform(v)
}

// SetAngle changes the direction of the vector to the given angle while
// keeping its length. Unlike every other method, SetAngle modifies v.
func (v *Vec) SetAngle(angle Rad) {
	*v = VecFromPolar(angle, v.Length())
}

// Angle returns the signed angle to the positive x-axis in the range (−π, π].
func (v Vec) Angle() Rad {
	return Rad(math.Atan2(v.Y, v.X))
}

func (v Vec) AngleDegrees() float64 {
	return v.Angle().Degrees()
}

// AngleBetween returns the unsigned angle between v and other in the range [0, π].
func (v Vec) AngleBetween(other VecLike) Rad {
	o := Wrap(other)

	cos := v.Dot(o) / (v.Length() * o.Length())

	// rounding can push the value slightly outside of acos' domain
	cos = math.Max(-1, math.Min(1, cos))

	return Rad(math.Acos(cos))
}

// ClockwiseAngleTo returns the angle to turn v in clockwise direction until it
// points in the same direction as other. The result is in the range [0, 2π).
//
// Clockwise is measured in the y-up coordinate system of the graph domain,
// which becomes clockwise on screen once the y-axis is flipped by the viewport.
func (v Vec) ClockwiseAngleTo(other VecLike) Rad {
	o := Wrap(other)
	angle := math.Atan2(v.Cross(o), v.Dot(o))
	return Rad(math.Mod(angle+Tau, Tau))
}

func (v Vec) DistanceTo(other VecLike) float64 {
	return v.Sub(other).Length()
}

func (v Vec) DistanceSqrTo(other VecLike) float64 {
	return v.Sub(other).LengthSqr()
}

// Transform applies the affine transform to v, treating v as a point.
func (v Vec) Transform(m *Affine) Vec {
	return m.Transform(v)
}

// Slope returns y/x. The value is ±Inf for vertical vectors.
func (v Vec) Slope() float64 {
	return v.Y / v.X
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
