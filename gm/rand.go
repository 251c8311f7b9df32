package gm

import (
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, Tau))
}

// RandomVec returns a vector uniformly sampled from within the unit circle.
func RandomVec() Vec {
	for {
		v := Vec{
			X: RandomIn(-1, 1),
			Y: RandomIn(-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomAffine returns a transformation with random rotation, scale and
// translation. The scale is kept away from zero, so the result is invertible.
func RandomAffine() *Affine {
	scale := VecOf(RandomIn(0.25, 4), RandomIn(0.25, 4))
	return NewAffine().
		Scale(scale).
		Rotate(RandomAngle()).
		Translate(RandomVec().Scale(100))
}
