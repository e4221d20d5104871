package curve

import (
	"isogeny.dev/sidhcore/internal/fp2"
)

// timesI sets v = a*i, the GF(p^2) element obtained by rotating
// a = a0+a1*i to -a1+a0*i. Used by CompletePoint/CompleteMPoint to
// build x +/- i*z without a general multiplication.
func timesI(a *fp2.Elt) fp2.Elt {
	var out fp2.Elt
	out.A.Neg(&a.B)
	out.B.Set(&a.A)
	return out
}

// CompletePoint lifts the x-only point P = (X:Z) on the curve A = 0
// (i.e. y^2 = x^3+x) to a full affine point R = (x, y, 1), choosing
// one of the two square roots for y. Returns a *FieldError if P's
// x-coordinate does not correspond to a point on the curve (s^2 =
// x*z*(x-iz)*(x+iz) is not a square in GF(p^2)).
func CompletePoint(P *PointProj) (*PointFullProj, error) {
	var R PointFullProj
	var xz, t0, t1, s2, r2, invz, yz fp2.Elt

	xz.Mul(&P.X, &P.Z)
	iz := timesI(&P.Z)
	t0.Sub(&P.X, &iz)
	t1.Add(&P.X, &iz)
	s2.Mul(&t0, &t1)
	r2.Mul(&xz, &s2)

	if _, wasSquare := yz.SqrtFp2(&r2); wasSquare == 0 {
		return nil, &FieldError{Op: "CompletePoint"}
	}

	invz.Set(&P.Z)
	invz.InvBinGCD(&invz)
	R.X.Mul(&P.X, &invz)
	t0.Square(&invz)
	R.Y.Mul(&yz, &t0)
	R.Z.SetOne()
	return &R, nil
}

// CompleteMPoint lifts an x-only representation (PX:PZ) on the
// Montgomery curve with affine coefficient A to a full affine point,
// choosing one of the two square roots for y. If PZ == 0, R is set to
// the identity (0:1:0). Returns a *FieldError if (PX:PZ) does not lift
// to a point on the curve.
func CompleteMPoint(A *fp2.Elt, PX, PZ *fp2.Elt) (*PointFullProj, error) {
	var R PointFullProj
	if PZ.IsZero() == 1 {
		R.X.Zero()
		R.Y.SetOne()
		R.Z.Zero()
		return &R, nil
	}

	var xz, t0, t1, s2, r2, invz, yz fp2.Elt
	xz.Mul(PX, PZ)
	iz := timesI(PZ)
	t0.Sub(PX, &iz)
	t1.Add(PX, &iz)
	s2.Mul(&t0, &t1)
	t0.Mul(A, &xz)
	t1.Add(&t0, &s2)
	r2.Mul(&xz, &t1)

	if _, wasSquare := yz.SqrtFp2(&r2); wasSquare == 0 {
		return nil, &FieldError{Op: "CompleteMPoint"}
	}

	invz.Set(PZ)
	invz.InvBinGCD(&invz)
	R.X.Mul(PX, &invz)
	t0.Square(&invz)
	R.Y.Mul(&yz, &t0)
	R.Z.SetOne()
	return &R, nil
}

// RecoverY recovers the full affine point for xs1 = (X1:Z1), given
// the already-affine point Rs0 = (x,y,1), the curve coefficient A,
// and a second x-only point xs2 = (X2:Z2) satisfying xs2 = xs1 + Rs0
// in the group. This is RecoverY from the reference construction,
// used by the public-key-compression path: knowing Rs0's y-coordinate
// already lets it recover xs1's y-coordinate algebraically, without a
// second sqrt_Fp2 call.
func RecoverY(A fp2.Elt, Rs0 *PointFullProj, xs1, xs2 *PointProj) *PointFullProj {
	var t0, t1, t2, t3, t4 fp2.Elt
	var R1 PointFullProj

	t0.Mul(&xs2.X, &xs1.Z)
	t1.Mul(&xs1.X, &xs2.Z)
	t2.Mul(&xs1.X, &xs2.X)
	t3.Mul(&xs1.Z, &xs2.Z)
	t4.Square(&xs1.X)
	R1.X.Square(&xs1.Z)
	R1.Y.Sub(&t2, &t3)
	R1.Y.Mul(&xs1.X, &R1.Y)
	t4.Add(&t4, &R1.X)
	t4.Mul(&xs2.Z, &t4)
	R1.X.Mul(&A, &t1)
	R1.Z.Sub(&t0, &t1)

	t0.Mul(&Rs0.X, &R1.Z)
	t1.Add(&t2, &R1.X)
	t1.Add(&t1, &t1)
	t0.Sub(&t0, &t1)
	t0.Mul(&xs1.Z, &t0)
	t0.Sub(&t0, &t4)
	t0.Mul(&Rs0.X, &t0)
	R1.Y.Add(&t0, &R1.Y)
	t0.Mul(&Rs0.Y, &t3)
	R1.X.Mul(&xs1.X, &t0)
	R1.X.Add(&R1.X, &R1.X)
	R1.Z.Mul(&xs1.Z, &t0)
	R1.Z.Add(&R1.Z, &R1.Z)

	R1.Z.InvBinGCD(&R1.Z)
	R1.X.Mul(&R1.X, &R1.Z)
	R1.Y.Mul(&R1.Y, &R1.Z)
	R1.Z.SetOne()

	return &R1
}
