package fp

// pMinus2 is the public, fixed exponent p-2 used for inversion via
// Fermat's little theorem (a^(p-2) = a^-1 mod p for a != 0). Because
// this exponent is a compile-time constant and not a secret, the
// square-and-multiply loop below may branch on its bits: the
// constant-time requirement elsewhere in this module binds control
// flow that depends on secret scalars or kernel points, not on public
// parameters such as this one.
var pMinus2 = [NWords]uint64{
	0xfffffffffffffffd, 0xffffffffffffffff, 0xffffffffffffffff,
	0xfdc1767ae2ffffff, 0x7bc65c783158aea3, 0x6cfc5fd681c52056,
	0x0002341f27177344,
}

// PMinus1Over2 is the public fixed exponent (p-1)/2, Euler's
// criterion exponent: a^((p-1)/2) is 1 if a is a nonzero square, and
// -1 otherwise.
var PMinus1Over2 = [NWords]uint64{
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
	0xfee0bb3d717fffff, 0x3de32e3c18ac5751, 0x367e2feb40e2902b,
	0x00011a0f938bb9a2,
}

// PPlus1Over4 is the public fixed exponent (p+1)/4. Since p434 is
// congruent to 3 (mod 4), a^((p+1)/4) is a square root of a whenever a
// is a nonzero square in GF(p).
var PPlus1Over4 = [NWords]uint64{
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
	0xff705d9eb8c00000, 0x9ef1971e0c562ba8, 0x1b3f17f5a0714815,
	0x00008d07c9c5dcd1,
}

// Pow sets v = a^e (mod p) for a fixed, public exponent e given as
// NWords little-endian 64-bit words, and returns v. Since e is public
// (never a secret scalar or a value derived from one), this
// square-and-multiply loop may branch on its bits without violating
// this module's constant-time discipline, which binds only
// secret-data-dependent control flow.
//
// This mirrors the fixed square-and-multiply exponentiation the
// teacher package uses for its own inversion (Pow22523 in fe.go),
// generalized from the bit-sparse 2^255-19 exponent to the
// general-shape exponents p434 needs.
func (v *Elt) Pow(a *Elt, e [NWords]uint64) *Elt {
	var result Elt
	result.SetOne()

	started := false
	for word := NWords - 1; word >= 0; word-- {
		w := e[word]
		for bit := 63; bit >= 0; bit-- {
			if started {
				result.Square(&result)
			}
			if (w>>uint(bit))&1 == 1 {
				if !started {
					result.Set(a)
					started = true
				} else {
					result.Mul(&result, a)
				}
			}
		}
	}
	v.Set(&result)
	return v
}

// Inv sets v = 1/a (mod p), and returns v. The behavior when a == 0 is
// a precondition violation left to the caller to avoid; in practice it
// returns 0, since 0 raised to any positive power is 0.
func (v *Elt) Inv(a *Elt) *Elt {
	return v.Pow(a, pMinus2)
}

// Sqrt sets v = a^((p+1)/4) (mod p), and returns v. When a is a
// nonzero square in GF(p), v is one of its two square roots; when a is
// not a square, v is a value satisfying no useful equation and the
// caller (IsSquare) is responsible for checking first.
func (v *Elt) Sqrt(a *Elt) *Elt {
	return v.Pow(a, PPlus1Over4)
}

// IsSquare returns 1 if a is a nonzero square in GF(p), and 0
// otherwise, via Euler's criterion a^((p-1)/2) == 1.
func (v *Elt) IsSquare() int {
	var t, one Elt
	t.Pow(v, PMinus1Over2)
	one.SetOne()
	return t.Equal(&one)
}
