package curve

import "isogeny.dev/sidhcore/internal/fp2"

// DualIsogenyCoeff holds the five GF(p^2) coefficients
// get_4_isog_dual computes alongside the codomain constants (A24, C24),
// which Get4IsogDual returns separately: C0 = 4*Z4^2, C1 = X4-Z4,
// C2 = X4+Z4, C3 = X4^2, C4 = Z4^2. C2, C3 and C4 are the
// (X4+Z4, X4^2, Z4^2) inputs EvalDual4IsogShared takes, mirroring the
// reference construction's As[][5] staging array.
type DualIsogenyCoeff struct {
	C0, C1, C2, C3, C4 fp2.Elt
}

// Get4IsogDual computes the dual of a 4-isogeny step: given a kernel
// point P = (X4:Z4) of order 4, it returns the codomain curve
// constants (A24, C24) and the coefficient set consumed by the
// following EvalDual4IsogShared/EvalDual4Isog pair in the chain.
func Get4IsogDual(P *PointProj) (A24, C24 fp2.Elt, coeff DualIsogenyCoeff) {
	coeff.C1.Sub(&P.X, &P.Z)
	coeff.C2.Add(&P.X, &P.Z)
	coeff.C4.Square(&P.Z)
	coeff.C0.Add(&coeff.C4, &coeff.C4)
	C24.Square(&coeff.C0)
	coeff.C0.Add(&coeff.C0, &coeff.C0)
	coeff.C3.Square(&P.X)
	A24.Add(&coeff.C3, &coeff.C3)
	A24.Square(&A24)
	return A24, C24, coeff
}

// EvalDual4IsogShared precomputes the three coefficients
// EvalDual4Isog needs for the *next* chain step from that step's own
// (X4+Z4, X4^2, Z4^2) values — the As[i-1]+2 slice in the reference
// construction's reverse-order As[][5] table.
func EvalDual4IsogShared(X4pZ4, X42, Z42 *fp2.Elt) (c0, c1, c2 fp2.Elt) {
	c0.Sub(X42, Z42)
	c1.Add(X42, Z42)
	c2.Square(X4pZ4)
	c2.Sub(&c2, &c1)
	return c0, c1, c2
}

// EvalDual4Isog sets P = phi(P) under the dual 4-isogeny with
// codomain constants (A24, C24) and shared coefficients (c0, c1, c2)
// from EvalDual4IsogShared, and returns P.
func EvalDual4Isog(A24, C24 *fp2.Elt, c0, c1, c2 *fp2.Elt, P *PointProj) *PointProj {
	var t0, t1, t2, t3 fp2.Elt
	t0.Add(&P.X, &P.Z)
	t1.Sub(&P.X, &P.Z)
	t0.Square(&t0)
	t1.Square(&t1)
	t2.Sub(&t0, &t1)
	t3.Sub(C24, A24)
	t3.Mul(&t2, &t3)
	t2.Mul(C24, &t0)
	t2.Sub(&t2, &t3)
	P.X.Mul(&t2, &t0)
	P.Z.Mul(&t3, &t1)
	P.X.Mul(c0, &P.X)
	t0.Mul(c1, &P.Z)
	P.X.Add(&P.X, &t0)
	P.Z.Mul(c2, &P.Z)
	return P
}

// EvalDual2Isog sets P = phi(P) under the dual of a 2-isogeny step
// with kernel-derived constants (X2, Z2), the counterpart used when
// the exponent EA is odd. Only meaningful when the
// parameter set's AliceIsogenyIsOdd is true.
func EvalDual2Isog(X2, Z2 *fp2.Elt, P *PointProj) *PointProj {
	var t0 fp2.Elt
	t0.Add(&P.X, &P.Z)
	P.Z.Sub(&P.X, &P.Z)
	t0.Square(&t0)
	P.Z.Square(&P.Z)
	P.Z.Sub(&t0, &P.Z)
	P.Z.Mul(X2, &P.Z)
	P.X.Mul(Z2, &t0)
	return P
}

// EvalFinalDual2Isog sets P = phi(P) under the final degree-2 isogeny
// of the dual chain, the step that lands on the curve A = 0. Unlike
// the rest of the chain, this step also swaps the real and imaginary
// parts of X and negates the new imaginary part (a fixed, public
// twist of the codomain, not a secret-dependent operation).
func EvalFinalDual2Isog(P *PointProj) *PointProj {
	var t0, t1 fp2.Elt
	t0.Add(&P.X, &P.Z)
	t1.Mul(&P.X, &P.Z)
	P.X.Square(&t0)

	swapped := P.X
	P.X.A.Set(&swapped.B)
	P.X.B.Set(&swapped.A)
	P.X.B.Neg(&P.X.B)

	P.Z.Add(&t1, &t1)
	P.Z.Add(&P.Z, &P.Z)
	return P
}

// EvalFullDual4Isog walks the complete dual chain in reverse. as[j]
// (j = 0..MaxAlice-1) holds the codomain constants (A24, C24) of
// forward step j+1 together with that step's own kernel-derived
// (X4+Z4, X4^2, Z4^2); initial holds the same three kernel-derived
// values for the *original* kernel point, before any forward step was
// taken (the reference construction's As[0] entry, which the reverse
// loop's last iteration needs and no forward step produces on its
// own). The optional trailing dual 2-isogeny (when aliceIsogenyIsOdd)
// and the final fixed dual 2-isogeny to A = 0 close out the chain.
func EvalFullDual4Isog(as []DualIsogenyStep, initial DualIsogenyStep, aliceIsogenyIsOdd bool, dual2X2, dual2Z2 *fp2.Elt, P *PointProj) *PointProj {
	maxAlice := len(as)
	for i := 0; i < maxAlice; i++ {
		step := as[maxAlice-1-i]
		var prev *DualIsogenyStep
		if maxAlice-2-i >= 0 {
			prev = &as[maxAlice-2-i]
		} else {
			prev = &initial
		}
		shared0, shared1, shared2 := EvalDual4IsogShared(&prev.X4pZ4, &prev.X42, &prev.Z42)
		EvalDual4Isog(&step.A24, &step.C24, &shared0, &shared1, &shared2, P)
	}
	if aliceIsogenyIsOdd {
		EvalDual2Isog(dual2X2, dual2Z2, P)
	}
	EvalFinalDual2Isog(P)
	return P
}

// DualIsogenyStep is one entry of the dual chain's staging table: the
// codomain constants and kernel data recorded while walking the
// forward 4-isogeny chain, replayed in reverse by EvalFullDual4Isog.
type DualIsogenyStep struct {
	A24, C24        fp2.Elt
	X4pZ4, X42, Z42 fp2.Elt
}
