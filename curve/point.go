// Package curve implements Montgomery-curve point arithmetic and
// isogeny construction/evaluation over GF(p^2): x-only doubling and
// tripling, the 3-point and full Montgomery ladders, 2/3/4-isogenies
// and their duals, and the affine-recovery utilities used to turn an
// x-only point back into a full (x,y) point.
package curve

import "isogeny.dev/sidhcore/internal/fp2"

// PointProj is a point in x-only projective coordinates (X:Z) on a
// Montgomery curve, where the affine x-coordinate is X/Z.
type PointProj struct {
	X, Z fp2.Elt
}

// PointFullProj is a point in full projective coordinates (X:Y:Z) on
// a Montgomery curve, where the affine coordinates are X/Z and Y/Z.
type PointFullProj struct {
	X, Y, Z fp2.Elt
}

// Set sets Q = P, and returns Q.
func (Q *PointProj) Set(P *PointProj) *PointProj {
	Q.X.Set(&P.X)
	Q.Z.Set(&P.Z)
	return Q
}

// CSwap exchanges P and Q if option is all-one-bits, and leaves them
// unchanged if option is zero. This is swap_points in the reference
// construction, specialized to a single pair of x-only points.
func CSwap(P, Q *PointProj, option uint64) {
	P.X.Swap(&Q.X, option)
	P.Z.Swap(&Q.Z, option)
}
