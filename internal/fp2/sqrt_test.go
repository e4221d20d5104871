package fp2

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSqrtFp2OfSquareRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genElt(t, "a")
		var asq, root, rootSq Elt
		asq.Square(&a)
		_, wasSquare := root.SqrtFp2(&asq)
		require.Equal(t, 1, wasSquare)
		rootSq.Square(&root)
		require.Equal(t, 1, rootSq.Equal(&asq))
	})
}

func TestSqrtFp2OfOneIsPlusOrMinusOne(t *testing.T) {
	var one, root, negOne, negRoot Elt
	one.SetOne()
	_, wasSquare := root.SqrtFp2(&one)
	require.Equal(t, 1, wasSquare)
	negOne.Neg(&one)
	negRoot.Neg(&root)
	require.True(t, root.Equal(&one) == 1 || negRoot.Equal(&one) == 1)
}
