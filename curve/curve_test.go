package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"isogeny.dev/sidhcore/internal/fp2"
)

func genFp2(t *rapid.T, label string) fp2.Elt {
	bytes := rapid.SliceOfN(rapid.Byte(), fp2.ByteLen, fp2.ByteLen).Draw(t, label)
	const topBits = 2
	bytes[fp2.ByteLen/2-1] &= (1 << topBits) - 1
	bytes[fp2.ByteLen-1] &= (1 << topBits) - 1
	var e fp2.Elt
	e.SetBytes(bytes)
	return e
}

func genNonzeroFp2(t *rapid.T, label string) fp2.Elt {
	for {
		e := genFp2(t, label)
		if e.IsZero() == 0 {
			return e
		}
	}
}

func TestInv3WayMatchesIndividualInverses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		z1 := genNonzeroFp2(t, "z1")
		z2 := genNonzeroFp2(t, "z2")
		z3 := genNonzeroFp2(t, "z3")

		var want1, want2, want3 fp2.Elt
		want1.Inv(&z1)
		want2.Inv(&z2)
		want3.Inv(&z3)

		got1, got2, got3 := z1, z2, z3
		Inv3Way(&got1, &got2, &got3)

		require.Equal(t, 1, got1.Equal(&want1))
		require.Equal(t, 1, got2.Equal(&want2))
		require.Equal(t, 1, got3.Equal(&want3))
	})
}

func TestGetAJInvIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xP := genFp2(t, "xP")
		xQ := genFp2(t, "xQ")
		xR := genFp2(t, "xR")

		A1 := GetA(&xP, &xQ, &xR)
		A2 := GetA(&xP, &xQ, &xR)
		require.Equal(t, 1, A1.Equal(A2))

		var one fp2.Elt
		one.SetOne()
		j1 := JInv(A1, &one)
		j2 := JInv(A2, &one)
		require.Equal(t, 1, j1.Equal(j2))
	})
}

func TestJInvInvariantUnderProjectiveScaling(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		A := genFp2(t, "A")
		C := genNonzeroFp2(t, "C")
		lambda := genNonzeroFp2(t, "lambda")

		j1 := JInv(&A, &C)

		var Ascaled, Cscaled fp2.Elt
		Ascaled.Mul(&A, &lambda)
		Cscaled.Mul(&C, &lambda)
		j2 := JInv(&Ascaled, &Cscaled)

		require.Equal(t, 1, j1.Equal(j2))
	})
}

func TestXDblEMatchesRepeatedXDbl(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		P := PointProj{X: genFp2(t, "x"), Z: genNonzeroFp2(t, "z")}
		A24plus := genFp2(t, "a24plus")
		C24 := genNonzeroFp2(t, "c24")
		e := rapid.IntRange(0, 4).Draw(t, "e")

		var viaE PointProj
		XDblE(&P, &A24plus, &C24, e, &viaE)

		viaLoop := P
		for i := 0; i < e; i++ {
			XDbl(&viaLoop, &A24plus, &C24, &viaLoop)
		}

		require.Equal(t, 1, viaE.X.Equal(&viaLoop.X))
		require.Equal(t, 1, viaE.Z.Equal(&viaLoop.Z))
	})
}

func TestXTplEMatchesRepeatedXTpl(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		P := PointProj{X: genFp2(t, "x"), Z: genNonzeroFp2(t, "z")}
		A24minus := genFp2(t, "a24minus")
		A24plus := genFp2(t, "a24plus")
		e := rapid.IntRange(0, 3).Draw(t, "e")

		var viaE PointProj
		XTplE(&P, &A24minus, &A24plus, e, &viaE)

		viaLoop := P
		for i := 0; i < e; i++ {
			XTpl(&viaLoop, &A24minus, &A24plus, &viaLoop)
		}

		require.Equal(t, 1, viaE.X.Equal(&viaLoop.X))
		require.Equal(t, 1, viaE.Z.Equal(&viaLoop.Z))
	})
}

func TestXTplEFastMatchesRepeatedXTplFast(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		P := PointProj{X: genFp2(t, "x"), Z: genNonzeroFp2(t, "z")}
		A2 := genFp2(t, "a2")
		e := rapid.IntRange(0, 3).Draw(t, "e")

		var viaE PointProj
		XTplEFast(&P, &A2, e, &viaE)

		viaLoop := P
		for i := 0; i < e; i++ {
			XTplFast(&viaLoop, &A2, &viaLoop)
		}

		require.Equal(t, 1, viaE.X.Equal(&viaLoop.X))
		require.Equal(t, 1, viaE.Z.Equal(&viaLoop.Z))
	})
}

func TestCSwapIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		P := PointProj{X: genFp2(t, "px"), Z: genFp2(t, "pz")}
		Q := PointProj{X: genFp2(t, "qx"), Z: genFp2(t, "qz")}
		origP, origQ := P, Q

		CSwap(&P, &Q, ^uint64(0))
		CSwap(&P, &Q, ^uint64(0))

		require.Equal(t, 1, P.X.Equal(&origP.X))
		require.Equal(t, 1, Q.X.Equal(&origQ.X))
	})
}
