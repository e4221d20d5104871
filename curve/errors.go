package curve

// FieldError reports that a GF(p^2) operation requiring a square (or
// nonzero) input was given one that is not, most commonly sqrt_Fp2
// called on a value that isn't a quadratic residue. This surfaces from
// CompletePoint/CompleteMPoint when the supplied x-only point does not
// in fact lift to an affine point on the claimed curve. RecoverY takes
// no square root and returns no error.
//
// Other precondition violations in this package (GetA called on
// collinear/degenerate x-coordinates, Inv3Way called with a zero
// input) are not reported this way: per this module's error-handling
// design, those are programmer errors reported by returning
// undefined-but-safe output, not by an observable error return, so
// that no caller can be tempted into a secret-dependent branch on the
// result.
type FieldError struct {
	Op string
}

func (e *FieldError) Error() string {
	return "curve: " + e.Op + ": value has no square root in GF(p^2)"
}
