package fp2

import "isogeny.dev/sidhcore/internal/fp"

// SqrtFp2 sets v to one of the two square roots of a in GF(p^2), and
// returns (v, 1) if a is a square, or (v, 0) if it is not — in which
// case v holds an unspecified value: a square root of a non-square is
// a precondition violation the caller must not commit to observably.
//
// This is sqrt_Fp2 in the reference construction, the one GF(p^2)
// operation the core treats as an external field-backend contract.
// p434 is congruent to
// 3 (mod 4) (true of every 2^eA*3^eB-1 SIDH prime, since eA >= 2), so
// the classical "complex square root" construction applies: writing
// a = a0 + a1*i, let delta = sqrt(a0^2+a1^2) in GF(p), and look for an
// x0 in GF(p) with 2*x0^2 == a0 +/- delta; the root is then
// x0 + (a1/(2*x0))*i.
func (v *Elt) SqrtFp2(a *Elt) (r *Elt, wasSquare int) {
	var a0sq, a1sq, norm, delta fp.Elt
	a0sq.Square(&a.A)
	a1sq.Square(&a.B)
	norm.Add(&a0sq, &a1sq)
	delta.Sqrt(&norm) // candidate sqrt(a0^2+a1^2)

	var deltaSq fp.Elt
	deltaSq.Square(&delta)
	normIsSquare := deltaSq.Equal(&norm)

	var sumAlpha, diffAlpha fp.Elt
	sumAlpha.Add(&a.A, &delta)
	sumAlpha.Div2(&sumAlpha)
	diffAlpha.Sub(&a.A, &delta)
	diffAlpha.Div2(&diffAlpha)

	sumIsSquare := sumAlpha.IsSquare()

	var alpha fp.Elt
	alpha.Select(&sumAlpha, &diffAlpha, sumIsSquare)

	var x0 fp.Elt
	x0.Sqrt(&alpha)

	var x0Sq fp.Elt
	x0Sq.Square(&x0)
	alphaIsSquare := x0Sq.Equal(&alpha)

	var twoX0, twoX0Inv, y0 fp.Elt
	twoX0.Add(&x0, &x0)
	twoX0Inv.Inv(&twoX0)
	y0.Mul(&a.B, &twoX0Inv)

	// When a1 == 0 and a0 is not a square in GF(p), neither alpha
	// candidate is a square, but a still is one in GF(p^2): its root is
	// then sqrt(-a0)*i.
	var negA0, z, zSq, zero fp.Elt
	negA0.Neg(&a.A)
	z.Sqrt(&negA0)
	zSq.Square(&z)
	imagRoot := (1 - alphaIsSquare) & a.B.IsZero() & zSq.Equal(&negA0)

	v.A.Select(&zero, &x0, imagRoot)
	v.B.Select(&z, &y0, imagRoot)

	wasSquare = (normIsSquare & alphaIsSquare) | imagRoot
	return v, wasSquare
}
