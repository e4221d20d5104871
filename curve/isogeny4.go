package curve

import "isogeny.dev/sidhcore/internal/fp2"

// Isogeny4Coeff holds the three GF(p^2) coefficients get_4_isog
// computes alongside the codomain curve, needed later by Eval4Isog.
type Isogeny4Coeff struct {
	C0, C1, C2 fp2.Elt
}

// Get4Isog computes the 4-isogenous curve of a point P = (X4:Z4) of
// order 4, returning the projective Montgomery constants A24plus =
// A+2C, C24 = 4C of the codomain curve, and the coefficients needed
// by Eval4Isog.
func Get4Isog(P *PointProj) (A24plus, C24 fp2.Elt, coeff Isogeny4Coeff) {
	coeff.C1.Sub(&P.X, &P.Z)
	coeff.C2.Add(&P.X, &P.Z)
	coeff.C0.Square(&P.Z)
	coeff.C0.Add(&coeff.C0, &coeff.C0)
	C24.Square(&coeff.C0)
	coeff.C0.Add(&coeff.C0, &coeff.C0)
	A24plus.Square(&P.X)
	A24plus.Add(&A24plus, &A24plus)
	A24plus.Square(&A24plus)
	return A24plus, C24, coeff
}

// Eval4Isog sets P = phi(P), the image of P under the 4-isogeny
// defined by coeff (as returned by Get4Isog), and returns P.
func Eval4Isog(P *PointProj, coeff Isogeny4Coeff) *PointProj {
	var t0, t1 fp2.Elt
	t0.Add(&P.X, &P.Z)
	t1.Sub(&P.X, &P.Z)
	P.X.Mul(&t0, &coeff.C1)
	P.Z.Mul(&t1, &coeff.C2)
	t0.Mul(&t0, &t1)
	t0.Mul(&coeff.C0, &t0)
	t1.Add(&P.X, &P.Z)
	P.Z.Sub(&P.X, &P.Z)
	t1.Square(&t1)
	P.Z.Square(&P.Z)
	P.X.Add(&t1, &t0)
	t0.Sub(&P.Z, &t0)
	P.X.Mul(&P.X, &t1)
	P.Z.Mul(&P.Z, &t0)
	return P
}
