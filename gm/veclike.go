package gm

import "math"

// VecLike is any value that can be turned into a Vec.
// The set of implementations is closed: Vec, Splat, Pair, Size and Fields.
type VecLike interface {
	vec() Vec
}

// Splat is a single scalar used for both axes.
type Splat float64

// Pair is an ordered (x, y) pair.
type Pair [2]float64

// Size is a (width, height) pair.
type Size struct {
	Width, Height float64
}

// Fields is a loosely typed set of named components, as produced by decoding
// untyped documents. The keys "x" and "y" are used if present, otherwise
// "width" and "height". A component without any key is NaN.
type Fields map[string]float64

func (v Vec) vec() Vec {
	return v
}

func (s Splat) vec() Vec {
	return VecSplat(float64(s))
}

func (p Pair) vec() Vec {
	return Vec{X: p[0], Y: p[1]}
}

func (s Size) vec() Vec {
	return Vec{X: s.Width, Y: s.Height}
}

func (f Fields) vec() Vec {
	return Vec{
		X: f.lookup("x", "width"),
		Y: f.lookup("y", "height"),
	}
}

func (f Fields) lookup(key, fallback string) float64 {
	if value, ok := f[key]; ok {
		return value
	}

	if value, ok := f[fallback]; ok {
		return value
	}

	return math.NaN()
}

// Wrap converts a vector like value into a Vec. A Vec is returned unchanged.
func Wrap(value VecLike) Vec {
	if v, ok := value.(Vec); ok {
		return v
	}

	if value == nil {
		return VecZero
	}

	return value.vec()
}
