package params

import (
	"testing"

	"github.com/stretchr/testify/require"

	"isogeny.dev/sidhcore/internal/fp2"
)

func TestSIKEp434(t *testing.T) {
	p := SIKEp434()
	require.Equal(t, 216, p.EA)
	require.Equal(t, 137, p.EB)
	require.Equal(t, 216, p.OAliceBits)
	require.False(t, p.AliceIsogenyIsOdd)
	require.False(t, p.CompressionEnabled)
	require.Equal(t, 108, p.MaxAlice)
	require.Equal(t, 137, p.MaxBob)
	// 3^137 is a ~218-bit number; this must not come out truncated by
	// an intermediate 64-bit accumulator.
	require.Equal(t, 218, p.OBobBits)
}

func TestSIKEp434Compressed(t *testing.T) {
	p := SIKEp434Compressed()
	require.True(t, p.CompressionEnabled)
	require.Equal(t, p.EA, SIKEp434().EA)
}

func TestStartingAIsSix(t *testing.T) {
	a := StartingA()
	var six fp2.Elt
	six.FromUint64(6)
	require.Equal(t, 1, a.Equal(&six))
}
