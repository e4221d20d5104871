// Package fp implements GF(p) arithmetic in Montgomery form for the
// SIKEp434 prime p = 2^216*3^137 - 1.
//
// This package is a thin wrapper around the fiat-crypto generated,
// formally verified field arithmetic for p434
// (github.com/mit-plv/fiat-crypto/fiat-go/64/p434): multiplication,
// squaring, addition, subtraction and negation are delegated directly
// to the generated code, which already runs in constant time and
// never branches on the value of a limb. This package adds the parts
// fiat-crypto doesn't generate — inversion, halving, byte encoding
// conventions matching the rest of this module, and the constant-time
// Select/Swap primitives used throughout curve — in the style the
// generated code itself uses (fixed-width array types, no heap
// allocation, value-returning methods on the receiver).
package fp

import (
	fiatp434 "github.com/mit-plv/fiat-crypto/fiat-go/64/p434"
)

// NWords is the number of 64-bit words (digit_t in the reference
// pseudocode) backing one field element: NWORDS_FIELD for SIKEp434.
const NWords = 7

// ByteLen is the number of bytes in the canonical little-endian
// encoding of a field element.
const ByteLen = 55

// Elt is a canonical Montgomery representative of an element of
// GF(p) (felm in the reference C construction). The zero value is the
// additive identity.
type Elt struct {
	v fiatp434.MontgomeryDomainFieldElement
}

// invTwo is 2^-1 mod p in Montgomery form, used by Div2.
var invTwo = montgomeryFromWords([NWords]uint64{
	0x0000000000003a16, 0x0000000000000000, 0x0000000000000000,
	0x5c87fa027e000000, 0x6c00d27daacfd66a, 0x74992a2a2fbba086,
	0x0000767753de976d,
})

// montgomeryOneWords is R mod p, the Montgomery-form representation
// of the integer 1.
var montgomeryOneWords = [NWords]uint64{
	0x000000000000742c, 0x0000000000000000, 0x0000000000000000,
	0xb90ff404fc000000, 0xd801a4fb559facd4, 0xe93254545f77410c,
	0x0000eceea7bd2eda,
}

func montgomeryFromWords(w [NWords]uint64) Elt {
	var e Elt
	e.v = fiatp434.MontgomeryDomainFieldElement(w)
	return e
}

// Zero sets v = 0, and returns v.
func (v *Elt) Zero() *Elt {
	var z fiatp434.MontgomeryDomainFieldElement
	v.v = z
	return v
}

// SetOne sets v = 1 (Montgomery_one), and returns v.
func (v *Elt) SetOne() *Elt {
	v.v = fiatp434.MontgomeryDomainFieldElement(montgomeryOneWords)
	return v
}

// Set sets v = a, and returns v.
func (v *Elt) Set(a *Elt) *Elt {
	v.v = a.v
	return v
}

// Add sets v = a + b, and returns v.
func (v *Elt) Add(a, b *Elt) *Elt {
	fiatp434.Add(&v.v, &a.v, &b.v)
	return v
}

// Sub sets v = a - b, and returns v.
func (v *Elt) Sub(a, b *Elt) *Elt {
	fiatp434.Sub(&v.v, &a.v, &b.v)
	return v
}

// Neg sets v = -a, and returns v.
func (v *Elt) Neg(a *Elt) *Elt {
	fiatp434.Opp(&v.v, &a.v)
	return v
}

// Mul sets v = a * b, and returns v.
func (v *Elt) Mul(a, b *Elt) *Elt {
	fiatp434.Mul(&v.v, &a.v, &b.v)
	return v
}

// Square sets v = a * a, and returns v.
func (v *Elt) Square(a *Elt) *Elt {
	fiatp434.Square(&v.v, &a.v)
	return v
}

// Div2 sets v = a/2 (mod p), and returns v. Implemented as a
// multiplication by the precomputed constant 2^-1, so it costs exactly
// what any other field multiplication costs and carries the same
// constant-time guarantee.
func (v *Elt) Div2(a *Elt) *Elt {
	return v.Mul(a, &invTwo)
}

// IsZero returns 1 if v == 0 and 0 otherwise, in constant time.
func (v *Elt) IsZero() int {
	var nz uint64
	fiatp434.Nonzero(&nz, &v.v)
	isNonzero := (nz | -nz) >> 63
	return int(1 - isNonzero)
}

const mask64 uint64 = 1<<64 - 1

// Select sets v to a if cond == 1, and to b if cond == 0. cond must be
// 0 or 1; any other value is undefined behavior intentionally left
// unchecked.
func (v *Elt) Select(a, b *Elt, cond int) *Elt {
	m := uint64(cond) * mask64
	for i := 0; i < NWords; i++ {
		v.v[i] = (m & a.v[i]) | (^m & b.v[i])
	}
	return v
}

// Swap exchanges v and u if option is all-one-bits, and leaves them
// unchanged if option is zero. option must be one of those two word
// values; this is the cswap primitive used throughout the package,
// specialized to a single field element.
func (v *Elt) Swap(u *Elt, option uint64) {
	for i := 0; i < NWords; i++ {
		t := option & (v.v[i] ^ u.v[i])
		v.v[i] ^= t
		u.v[i] ^= t
	}
}

// Bytes returns the canonical little-endian encoding of v, after
// converting out of Montgomery form.
func (v *Elt) Bytes() []byte {
	var plain fiatp434.NonMontgomeryDomainFieldElement
	fiatp434.FromMontgomery(&plain, &v.v)
	var out [ByteLen]byte
	fiatp434.ToBytes(&out, &plain)
	return out[:]
}

// SetBytes sets v from a little-endian byte encoding, converting into
// Montgomery form, and returns v. x must be ByteLen bytes long.
func (v *Elt) SetBytes(x []byte) *Elt {
	var buf [ByteLen]byte
	copy(buf[:], x)
	var plain fiatp434.NonMontgomeryDomainFieldElement
	fiatp434.FromBytes(&plain, &buf)
	fiatp434.ToMontgomery(&v.v, &plain)
	return v
}

// Equal returns 1 if v and u represent the same field element, and 0
// otherwise.
func (v *Elt) Equal(u *Elt) int {
	var diff Elt
	diff.Sub(v, u)
	return diff.IsZero()
}
