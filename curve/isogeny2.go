package curve

import "isogeny.dev/sidhcore/internal/fp2"

// Get2Isog computes the 2-isogenous curve of a point P = (X2:Z2) of
// order 2, returning the projective Montgomery coefficients (A, C)
// with A/C the new curve's A-invariant. Only meaningful when
// AliceIsogenyIsOdd: Alice's 4-isogeny chain ends with one 2-isogeny
// step precisely when EA is odd.
func Get2Isog(P *PointProj) (A, C fp2.Elt) {
	A.Square(&P.X)
	C.Square(&P.Z)
	A.Sub(&C, &A)
	return A, C
}

// Eval2Isog sets P = phi(P), the image of P under the 2-isogeny whose
// kernel generator is Q (of order 2), and returns P.
func Eval2Isog(P, Q *PointProj) *PointProj {
	var t0, t1, t2, t3 fp2.Elt
	t0.Add(&Q.X, &Q.Z)
	t1.Sub(&Q.X, &Q.Z)
	t2.Add(&P.X, &P.Z)
	t3.Sub(&P.X, &P.Z)
	t0.Mul(&t0, &t3)
	t1.Mul(&t1, &t2)
	t2.Add(&t0, &t1)
	t3.Sub(&t0, &t1)
	P.X.Mul(&P.X, &t2)
	P.Z.Mul(&P.Z, &t3)
	return P
}
