// Package params holds the fixed parameter set for an instance of the
// isogeny arithmetic: the exponents eA/eB defining the two torsion
// subgroups, derived loop bounds, and the resolved feature toggles
// that the reference C construction this package is based on selected
// with build-time macros (OALICE_BITS, OBOB_BITS, compression builds).
// Here they are ordinary struct fields decided at construction, so a
// single binary can carry more than one parameter set without a
// recompile.
package params

import (
	"math/big"

	"isogeny.dev/sidhcore/internal/fp2"
)

// Parameters describes one SIDH/SIKE prime's public parameter set.
type Parameters struct {
	// Name identifies the parameter set, e.g. "SIKEp434".
	Name string

	// EA, EB are the exponents such that p = 2^EA * 3^EB - 1.
	EA, EB int

	// OAliceBits, OBobBits are the bit lengths of the Alice/Bob
	// secret-key spaces: OAliceBits == EA, OBobBits == ceil(log2(3^EB)).
	OAliceBits, OBobBits int

	// MaxAlice, MaxBob are the isogeny-chain lengths walked by
	// Alice's (degree-4, with a possible trailing degree-2 step when
	// EA is odd) and Bob's (degree-3) isogeny computations.
	MaxAlice, MaxBob int

	// AliceIsogenyIsOdd is true when EA is odd, meaning Alice's
	// 4-isogeny chain must end with one extra 2-isogeny step. Decided
	// once here instead of by a preprocessor macro on EA's parity.
	AliceIsogenyIsOdd bool

	// CompressionEnabled marks the compression variant of the
	// parameter set (false for SIKEp434, true for SIKEp434Compressed).
	// Nothing in this module reads it: the dual-isogeny functions in
	// curve/dual.go are callable whatever its value, and there is no
	// dual three-point ladder.
	CompressionEnabled bool

	// SecretKeyBytesAlice, SecretKeyBytesBob are the encoded lengths of
	// a random secret exponent for each side, sized from the bit
	// lengths above.
	SecretKeyBytesAlice, SecretKeyBytesBob int
}

// StartingA returns the Montgomery coefficient A = 6 of the starting
// supersingular curve E_6: y^2 = x^3 + 6x^2 + x, common to every
// SIDH/SIKE parameter set currently standardized.
func StartingA() *fp2.Elt {
	var a fp2.Elt
	a.FromUint64(6)
	return &a
}

// obBobBitLen returns the bit length of 3^e, i.e. ceil(log2(3^e)) when
// 3^e isn't itself a power of two (it never is, for e > 0). Routed
// through math/big rather than a uint64 accumulator: SIKE's EB=137
// makes 3^e a ~218-bit number, which would silently wrap in a 64-bit
// word long before reaching its real bit length.
func obBobBitLen(e int) int {
	pow := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(e)), nil)
	return pow.BitLen()
}

// newParameters derives the bookkeeping fields of Parameters from
// (name, eA, eB, compressionEnabled).
func newParameters(name string, eA, eB int, compressionEnabled bool) Parameters {
	obBits := obBobBitLen(eB)
	return Parameters{
		Name:                name,
		EA:                  eA,
		EB:                  eB,
		OAliceBits:          eA,
		OBobBits:            obBits,
		MaxAlice:            (eA + 1) / 2,
		MaxBob:              eB,
		AliceIsogenyIsOdd:   eA%2 == 1,
		CompressionEnabled:  compressionEnabled,
		SecretKeyBytesAlice: (eA + 7) / 8,
		SecretKeyBytesBob:   (obBits + 7) / 8,
	}
}

// SIKEp434 returns the parameter set for p = 2^216*3^137 - 1, with
// compression primitives disabled.
func SIKEp434() Parameters {
	return newParameters("SIKEp434", 216, 137, false)
}

// SIKEp434Compressed is SIKEp434 with the dual-isogeny/compression
// machinery enabled.
func SIKEp434Compressed() Parameters {
	return newParameters("SIKEp434Compressed", 216, 137, true)
}
