package fp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// nbitsField is the bit length of p434 (2^216*3^137-1 fits in 434
// bits); the top byte of the ByteLen-byte encoding only carries
// nbitsField - 8*(ByteLen-1) significant bits, and any unused high
// bits must be zero for the value to be a valid (< p) representative.
const nbitsField = 434

func genElt(t *rapid.T, label string) Elt {
	bytes := rapid.SliceOfN(rapid.Byte(), ByteLen, ByteLen).Draw(t, label)
	topBits := nbitsField - 8*(ByteLen-1)
	bytes[ByteLen-1] &= (1 << uint(topBits)) - 1
	var e Elt
	e.SetBytes(bytes)
	return e
}

func genNonzeroElt(t *rapid.T, label string) Elt {
	for {
		e := genElt(t, label)
		if e.IsZero() == 0 {
			return e
		}
	}
}

func TestAddSubInverses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genElt(t, "a")
		b := genElt(t, "b")
		var s, r Elt
		s.Add(&a, &b)
		r.Sub(&s, &b)
		require.Equal(t, 1, r.Equal(&a))
	})
}

func TestMulInvIsOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genNonzeroElt(t, "a")
		var inv, prod, one Elt
		inv.Inv(&a)
		prod.Mul(&a, &inv)
		one.SetOne()
		require.Equal(t, 1, prod.Equal(&one))
	})
}

func TestSquareMatchesMul(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genElt(t, "a")
		var viaSquare, viaMul Elt
		viaSquare.Square(&a)
		viaMul.Mul(&a, &a)
		require.Equal(t, 1, viaSquare.Equal(&viaMul))
	})
}

func TestSqrtOfSquareRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genElt(t, "a")
		var asq, root, rootSq Elt
		asq.Square(&a)
		root.Sqrt(&asq)
		rootSq.Square(&root)
		require.Equal(t, 1, rootSq.Equal(&asq))
	})
}

func TestIsSquareOfNonzeroSquare(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genNonzeroElt(t, "a")
		var asq Elt
		asq.Square(&a)
		require.Equal(t, 1, asq.IsSquare())
	})
}

func TestSelectPicksOperand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genElt(t, "a")
		b := genElt(t, "b")
		var selA, selB Elt
		selA.Select(&a, &b, 1)
		selB.Select(&a, &b, 0)
		require.Equal(t, 1, selA.Equal(&a))
		require.Equal(t, 1, selB.Equal(&b))
	})
}

func TestSwapIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genElt(t, "a")
		b := genElt(t, "b")
		origA, origB := a, b
		a.Swap(&b, ^uint64(0))
		a.Swap(&b, ^uint64(0))
		require.Equal(t, 1, a.Equal(&origA))
		require.Equal(t, 1, b.Equal(&origB))
	})
}

func TestBytesRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genElt(t, "a")
		var b Elt
		b.SetBytes(a.Bytes())
		require.Equal(t, 1, a.Equal(&b))
	})
}

func TestDiv2TimesTwo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genElt(t, "a")
		var half, doubled Elt
		half.Div2(&a)
		doubled.Add(&half, &half)
		require.Equal(t, 1, doubled.Equal(&a))
	})
}
