package curve

import "isogeny.dev/sidhcore/internal/fp2"

// Inv3Way inverts z1, z2 and z3 in place using a single GF(p^2)
// inversion shared across all three (inv_3_way in the reference
// construction): one fp2.Inv plus six multiplications, instead of
// three separate inversions.
func Inv3Way(z1, z2, z3 *fp2.Elt) {
	var t0, t1, t2 fp2.Elt
	t0.Mul(z1, z2)
	t1.Mul(z3, &t0)
	t1.Inv(&t1)
	t2.Mul(z3, &t1)
	z3.Mul(&t0, &t1)
	t0.Mul(&t2, z2)
	z2.Mul(&t2, z1)
	z1.Set(&t0)
}

// GetA computes the Montgomery coefficient A of the curve E_A:
// y^2=x^3+A*x^2+x such that xR = x(Q-P) on E_A, given the
// x-coordinates xP, xQ, xR of P, Q and R = Q-P.
func GetA(xP, xQ, xR *fp2.Elt) *fp2.Elt {
	var t0, t1, one, A fp2.Elt
	one.SetOne()

	t1.Add(xP, xQ)
	t0.Mul(xP, xQ)
	A.Mul(xR, &t1)
	A.Add(&A, &t0)
	t0.Mul(&t0, xR)
	A.Sub(&A, &one)
	t0.Add(&t0, &t0)
	t1.Add(&t1, xR)
	t0.Add(&t0, &t0)
	A.Square(&A)

	var t0Inv fp2.Elt
	t0Inv.Inv(&t0)
	A.Mul(&A, &t0Inv)
	A.Sub(&A, &t1)
	return &A
}

// JInv computes the j-invariant j = 256*(A^2-3C^2)^3 / (C^4*(A^2-4C^2))
// of the Montgomery curve with projective coefficient A/C.
func JInv(A, C *fp2.Elt) *fp2.Elt {
	var jinv, t0, t1 fp2.Elt
	jinv.Square(A)
	t1.Square(C)
	t0.Add(&t1, &t1)
	t0.Sub(&jinv, &t0)
	t0.Sub(&t0, &t1)
	jinv.Sub(&t0, &t1)
	t1.Square(&t1)
	jinv.Mul(&jinv, &t1)
	t0.Add(&t0, &t0)
	t0.Add(&t0, &t0)
	t1.Square(&t0)
	t0.Mul(&t0, &t1)
	t0.Add(&t0, &t0)
	t0.Add(&t0, &t0)

	var jinvInv fp2.Elt
	jinvInv.Inv(&jinv)
	jinv.Mul(&jinvInv, &t0)
	return &jinv
}
