package curve

import "isogeny.dev/sidhcore/internal/fp2"

// XDbl sets Q = 2*P on the Montgomery curve with projective constants
// A24plus = A+2C, C24 = 4C, and returns Q. P and Q may alias.
func XDbl(P *PointProj, A24plus, C24 *fp2.Elt, Q *PointProj) *PointProj {
	var t0, t1 fp2.Elt
	t0.Sub(&P.X, &P.Z)
	t1.Add(&P.X, &P.Z)
	t0.Square(&t0)
	t1.Square(&t1)
	Q.Z.Mul(C24, &t0)
	Q.X.Mul(&t1, &Q.Z)
	t1.Sub(&t1, &t0)
	t0.Mul(A24plus, &t1)
	Q.Z.Add(&Q.Z, &t0)
	Q.Z.Mul(&Q.Z, &t1)
	return Q
}

// XDblE sets Q = [2^e]P via e repeated doublings, and returns Q.
func XDblE(P *PointProj, A24plus, C24 *fp2.Elt, e int, Q *PointProj) *PointProj {
	Q.Set(P)
	for i := 0; i < e; i++ {
		XDbl(Q, A24plus, C24, Q)
	}
	return Q
}

// XTpl sets Q = 3*P on the Montgomery curve with projective constants
// A24plus = A+2C, A24minus = A-2C, and returns Q. P and Q may alias.
func XTpl(P *PointProj, A24minus, A24plus *fp2.Elt, Q *PointProj) *PointProj {
	var t0, t1, t2, t3, t4, t5, t6 fp2.Elt

	t0.Sub(&P.X, &P.Z)
	t2.Square(&t0)
	t1.Add(&P.X, &P.Z)
	t3.Square(&t1)
	t4.Add(&P.X, &P.X)
	t0.Add(&P.Z, &P.Z)
	t1.Square(&t4)
	t1.Sub(&t1, &t3)
	t1.Sub(&t1, &t2)
	t5.Mul(A24plus, &t3)
	t3.Mul(&t3, &t5)
	t6.Mul(A24minus, &t2)
	t2.Mul(&t2, &t6)
	t3.Sub(&t2, &t3)
	t2.Sub(&t5, &t6)
	t1.Mul(&t1, &t2)
	t2.Add(&t3, &t1)
	t2.Square(&t2)
	Q.X.Mul(&t4, &t2)
	t1.Sub(&t3, &t1)
	t1.Square(&t1)
	Q.Z.Mul(&t0, &t1)
	return Q
}

// XTplE sets Q = [3^e]P via e repeated triplings, and returns Q.
func XTplE(P *PointProj, A24minus, A24plus *fp2.Elt, e int, Q *PointProj) *PointProj {
	Q.Set(P)
	for i := 0; i < e; i++ {
		XTpl(Q, A24minus, A24plus, Q)
	}
	return Q
}

// XTplFast sets Q = 3*P using the affine curve constant A2 = A/2
// (5M+6S instead of XTpl's larger operation count), and returns Q. P
// and Q may alias.
func XTplFast(P *PointProj, A2 *fp2.Elt, Q *PointProj) *PointProj {
	var t1, t2, t3, t4 fp2.Elt

	t1.Square(&P.X)
	t2.Square(&P.Z)
	t3.Add(&t1, &t2)
	t4.Add(&P.X, &P.Z)
	t4.Square(&t4)
	t4.Sub(&t4, &t3)
	t4.Mul(A2, &t4)
	t4.Add(&t3, &t4)
	t3.Sub(&t1, &t2)
	t3.Square(&t3)
	t1.Mul(&t1, &t4)
	t1.Shl(&t1, 2)
	t1.Sub(&t1, &t3)
	t1.Square(&t1)
	t2.Mul(&t2, &t4)
	t2.Shl(&t2, 2)
	t2.Sub(&t2, &t3)
	t2.Square(&t2)
	Q.X.Mul(&P.X, &t2)
	Q.Z.Mul(&P.Z, &t1)
	return Q
}

// XTplEFast sets Q = [3^e]P via e repeated XTplFast triplings, and
// returns Q.
func XTplEFast(P *PointProj, A2 *fp2.Elt, e int, Q *PointProj) *PointProj {
	var T PointProj
	T.Set(P)
	for i := 0; i < e; i++ {
		XTplFast(&T, A2, &T)
	}
	Q.Set(&T)
	return Q
}

// XDblAffine sets Q = [2^k]P on the curve given by the x-only-ladder
// constant A24 = (A+2)/4 in affine (not projective-C) form, doing k
// repeated doublings with the same operation schedule whether k is 1
// (the plain affine-A24 doubling used standalone) or larger. This is
// the Double/xDBL_e affine-A24 variant: the same doubling as XDblE (the
// results agree up to projective scaling), parameterized on the affine
// A24 instead of the pair
// (A24plus, C24), for callers that already carry curves in that form.
func XDblAffine(P *PointProj, A24 *fp2.Elt, k int, Q *PointProj) *PointProj {
	Q.Set(P)
	var a, b, c, aa, bb, tmp fp2.Elt
	for j := 0; j < k; j++ {
		a.Add(&Q.X, &Q.Z)
		b.Sub(&Q.X, &Q.Z)
		aa.Square(&a)
		bb.Square(&b)
		c.Sub(&aa, &bb)
		Q.X.Mul(&aa, &bb)
		tmp.Mul(A24, &c)
		tmp.Add(&tmp, &bb)
		Q.Z.Mul(&c, &tmp)
	}
	return Q
}

// XDblAdd sets P = 2*P and Q = P0+Q (the *original* P, before this
// call overwrote it), given the affine difference xPQ = x(P0-Q) as
// (XPQ:ZPQ) and the ladder constant A24 = (A+2)/4. This is the
// simultaneous-doubling-and-differential-addition step (xDBLADD in the
// reference construction) shared by every ladder in this package.
func XDblAdd(P, Q *PointProj, XPQ, ZPQ, A24 *fp2.Elt) {
	var t0, t1, t2 fp2.Elt

	t0.Add(&P.X, &P.Z)
	t1.Sub(&P.X, &P.Z)
	P.X.Square(&t0)
	t2.Sub(&Q.X, &Q.Z)
	Q.X.Add(&Q.X, &Q.Z)
	t0.Mul(&t0, &t2)
	P.Z.Square(&t1)
	t1.Mul(&t1, &Q.X)
	t2.Sub(&P.X, &P.Z)
	P.X.Mul(&P.X, &P.Z)
	Q.X.Mul(A24, &t2)
	Q.Z.Sub(&t0, &t1)
	P.Z.Add(&Q.X, &P.Z)
	Q.X.Add(&t0, &t1)
	P.Z.Mul(&P.Z, &t2)
	Q.Z.Square(&Q.Z)
	Q.X.Square(&Q.X)
	Q.Z.Mul(&Q.Z, XPQ)
	Q.X.Mul(&Q.X, ZPQ)
}
