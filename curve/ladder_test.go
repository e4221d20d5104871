package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"isogeny.dev/sidhcore/internal/fp2"
)

// TestLadderSingleZeroBitMatchesDirectDouble pins down Ladder's
// initial state: with orderBits=1 and m={0}, the loop's one iteration
// never swaps (prevbit stays 0 throughout), so R0 is left holding
// exactly XDblAdd(R0=P, R1=2P, diff=x(P)) applied once, which is the
// same arithmetic XDblAffine performs directly. Two independent
// doubling code paths must agree.
func TestLadderSingleZeroBitMatchesDirectDouble(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		P := PointProj{X: genFp2(t, "x"), Z: *new(fp2.Elt).SetOne()}
		A := genFp2(t, "A")
		A24 := a24FromA(&A)

		var R, want PointProj
		Ladder(&P, []uint64{0}, &A, 1, &R)
		XDblAffine(&P, &A24, 1, &want)

		require.Equal(t, 1, R.X.Equal(&want.X))
		require.Equal(t, 1, R.Z.Equal(&want.Z))
	})
}

// TestLadderSingleOneBitMatchesDirectTriple covers the other bit value
// for the same orderBits=1 case: with m={1}, the loop's swap fires
// once (R0<->R1 before the step, then again after), which works out
// to R0 = 3P — the same result XTpl computes directly via the
// projective tripling formula, an entirely different operation count
// and code path.
func TestLadderSingleOneBitMatchesDirectTriple(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		P := PointProj{X: genFp2(t, "x"), Z: *new(fp2.Elt).SetOne()}
		A := genFp2(t, "A")

		var R, want PointProj
		Ladder(&P, []uint64{1}, &A, 1, &R)

		var one, two, A24minus, A24plus fp2.Elt
		one.SetOne()
		two.Add(&one, &one)
		A24plus.Add(&A, &two)
		A24minus.Sub(&A, &two)
		XTpl(&P, &A24minus, &A24plus, &want)

		// Ladder and XTpl return different projective representatives
		// of 3P, so compare X/Z by cross-multiplication.
		var lhs, rhs fp2.Elt
		lhs.Mul(&R.X, &want.Z)
		rhs.Mul(&want.X, &R.Z)
		require.Equal(t, 1, lhs.Equal(&rhs))
	})
}

// TestLadder3PtZeroScalarReturnsXPUnchanged is spec scenario S3's
// first half: with m={0}, every loop iteration sees bit==prevbit==0,
// so CSwap never fires and XDblAdd never touches R (it only reads
// R.X/R.Z as the fixed difference operand) — R must come out exactly
// equal to the xP argument, untouched.
func TestLadder3PtZeroScalarReturnsXPUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xP := genFp2(t, "xP")
		xQ := genFp2(t, "xQ")
		xPQ := genFp2(t, "xPQ")
		A := genFp2(t, "A")

		var R PointProj
		Ladder3Pt(&xP, &xQ, &xPQ, []uint64{0}, 1, &A, &R)

		var wantZ fp2.Elt
		wantZ.SetOne()
		require.Equal(t, 1, R.X.Equal(&xP))
		require.Equal(t, 1, R.Z.Equal(&wantZ))
	})
}

// TestLadder3PtOneBitMatchesSingleDifferentialAddStep is S3's second
// half, for nbits=1, m={1}: the loop swaps (R,R2), runs one
// XDblAdd(R0,R2,...), then the terminal cswap swaps back — so R ends
// up holding whatever that single XDblAdd step wrote into R2, i.e. the
// x-coordinate of P+Q recovered via the differential-addition formula
// from xQ, xP and the supplied difference xPQ. Reproducing that same
// sequence of calls independently must land on the same value.
func TestLadder3PtOneBitMatchesSingleDifferentialAddStep(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xP := genFp2(t, "xP")
		xQ := genFp2(t, "xQ")
		xPQ := genFp2(t, "xPQ")
		A := genFp2(t, "A")
		A24 := a24FromA(&A)

		var R PointProj
		Ladder3Pt(&xP, &xQ, &xPQ, []uint64{1}, 1, &A, &R)

		var one fp2.Elt
		one.SetOne()
		R0 := PointProj{X: xQ, Z: one}
		R2 := PointProj{X: xP, Z: one}
		diff := PointProj{X: xPQ, Z: one}
		XDblAdd(&R0, &R2, &diff.X, &diff.Z, &A24)

		require.Equal(t, 1, R.X.Equal(&R2.X))
		require.Equal(t, 1, R.Z.Equal(&R2.Z))
	})
}
