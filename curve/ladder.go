package curve

import "isogeny.dev/sidhcore/internal/fp2"

// scalarBit returns bit i of m, a scalar packed as little-endian
// 64-bit words (digit_t array in the reference construction), with i
// counted from the least significant bit of m[0].
func scalarBit(m []uint64, i int) uint64 {
	return (m[i>>6] >> uint(i&63)) & 1
}

// a24FromA sets A24 = (A+2)/4 for the affine Montgomery coefficient A,
// the ladder constant shared by Ladder and Ladder3Pt.
func a24FromA(A *fp2.Elt) fp2.Elt {
	var one, A24 fp2.Elt
	one.SetOne()
	A24.Add(&one, &one)
	A24.Add(A, &A24)
	A24.Div2(&A24)
	A24.Div2(&A24)
	return A24
}

// Ladder computes R = (2^orderBits + m)*P on the Montgomery curve with
// affine coefficient A, using the full constant-time Montgomery ladder:
// it starts from (R0, R1) = (P, 2P) and scans the low orderBits bits of
// m from the top, so a 1 bit just above them is implicit. P must not
// be the point at infinity.
func Ladder(P *PointProj, m []uint64, A *fp2.Elt, orderBits int, R *PointProj) *PointProj {
	A24 := a24FromA(A)

	var R0, R1 PointProj
	R0.Set(P)
	XDblAffine(P, &A24, 1, &R1)

	prevbit := uint64(0)
	for i := orderBits - 1; i >= 0; i-- {
		bit := scalarBit(m, i)
		swap := bit ^ prevbit
		prevbit = bit
		mask := uint64(0) - swap
		CSwap(&R0, &R1, mask)
		XDblAdd(&R0, &R1, &P.X, &P.Z, &A24)
	}
	swap := uint64(0) ^ prevbit
	mask := uint64(0) - swap
	CSwap(&R0, &R1, mask)

	R.Set(&R0)
	return R
}

// Ladder3Pt computes R = x(P + [m]Q) in x-only form, i.e. the
// three-point ladder used to evaluate a secret isogeny kernel given
// the public base points P, Q and their difference PQ = P-Q
// (LADDER3PT in the reference construction). nbits is the bit length
// to scan: EA for Alice,
// OBobBits-1 for Bob (the reference construction's asymmetric bound,
// since Bob's scalar's top bit is implicit).
func Ladder3Pt(xP, xQ, xPQ *fp2.Elt, m []uint64, nbits int, A *fp2.Elt, R *PointProj) *PointProj {
	A24 := a24FromA(A)

	var R0, R2 PointProj
	R0.X.Set(xQ)
	R0.Z.SetOne()
	R2.X.Set(xPQ)
	R2.Z.SetOne()
	R.X.Set(xP)
	R.Z.SetOne()

	prevbit := uint64(0)
	for i := 0; i < nbits; i++ {
		bit := scalarBit(m, i)
		swap := bit ^ prevbit
		prevbit = bit
		mask := uint64(0) - swap
		CSwap(R, &R2, mask)
		XDblAdd(&R0, &R2, &R.X, &R.Z, &A24)
	}
	swap := uint64(0) ^ prevbit
	mask := uint64(0) - swap
	CSwap(R, &R2, mask)
	return R
}
