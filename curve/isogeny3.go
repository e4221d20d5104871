package curve

import "isogeny.dev/sidhcore/internal/fp2"

// Isogeny3Coeff holds the two GF(p^2) coefficients get_3_isog
// computes alongside the codomain curve, needed later by Eval3Isog.
type Isogeny3Coeff struct {
	C0, C1 fp2.Elt
}

// Get3Isog computes the 3-isogenous curve of a point P = (X3:Z3) of
// order 3, returning the projective Montgomery constants A24minus =
// A-2C, A24plus = A+2C of the codomain curve, and the coefficients
// needed by Eval3Isog.
func Get3Isog(P *PointProj) (A24minus, A24plus fp2.Elt, coeff Isogeny3Coeff) {
	var t0, t1, t2, t3, t4 fp2.Elt

	coeff.C0.Sub(&P.X, &P.Z)
	t0.Square(&coeff.C0)
	coeff.C1.Add(&P.X, &P.Z)
	t1.Square(&coeff.C1)
	t3.Add(&P.X, &P.X)
	t3.Square(&t3)
	t2.Sub(&t3, &t0)
	t3.Sub(&t3, &t1)
	t4.Add(&t0, &t3)
	t4.Add(&t4, &t4)
	t4.Add(&t1, &t4)
	A24minus.Mul(&t2, &t4)
	t4.Add(&t1, &t2)
	t4.Add(&t4, &t4)
	t4.Add(&t0, &t4)
	A24plus.Mul(&t3, &t4)
	return A24minus, A24plus, coeff
}

// Eval3Isog sets Q = phi(Q), the image of Q under the 3-isogeny
// defined by coeff (as returned by Get3Isog), and returns Q.
func Eval3Isog(Q *PointProj, coeff Isogeny3Coeff) *PointProj {
	var t0, t1, t2 fp2.Elt
	t0.Add(&Q.X, &Q.Z)
	t1.Sub(&Q.X, &Q.Z)
	t0.Mul(&coeff.C0, &t0)
	t1.Mul(&coeff.C1, &t1)
	t2.Add(&t0, &t1)
	t0.Sub(&t1, &t0)
	t2.Square(&t2)
	t0.Square(&t0)
	Q.X.Mul(&Q.X, &t2)
	Q.Z.Mul(&Q.Z, &t0)
	return Q
}
