package gm

// AffineLike is any value that can be turned into an Affine transformation.
// The set of implementations is closed: Affine, *Affine, Coefficients, Fill and ABCDEF.
type AffineLike interface {
	affine() Affine
}

// Coefficients holds the six coefficients in the order a, b, c, d, tx, ty.
type Coefficients [6]float64

// Fill sets all six coefficients, including the translation, to the same value.
// Note that this is not a scaled identity. The behaviour is kept for
// compatibility with documents written for the web based graph library.
type Fill float64

// ABCDEF is the layout of platform matrices such as a DOMMatrix or a canvas
// transform, where E and F hold the translation.
type ABCDEF struct {
	A, B, C, D, E, F float64
}

func (m Affine) affine() Affine {
	return m
}

func (c Coefficients) affine() Affine {
	return Affine{A: c[0], B: c[1], C: c[2], D: c[3], Tx: c[4], Ty: c[5]}
}

func (f Fill) affine() Affine {
	v := float64(f)
	return Affine{A: v, B: v, C: v, D: v, Tx: v, Ty: v}
}

func (m ABCDEF) affine() Affine {
	return Affine{A: m.A, B: m.B, C: m.C, D: m.D, Tx: m.E, Ty: m.F}
}

// AffineFrom returns a new transformation built from the given value.
// A nil value yields the identity. The result never aliases the input.
func AffineFrom(value AffineLike) *Affine {
	if value == nil {
		return NewAffine()
	}

	m := value.affine()
	return &m
}
