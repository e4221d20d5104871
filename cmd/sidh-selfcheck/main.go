// Command sidh-selfcheck exercises the field, curve and RNG layers
// against a handful of algebraic identities that must hold regardless
// of parameter set, without relying on any memorized known-answer
// test vector. It is meant as a quick sanity check of a build, not a
// substitute for the package test suites.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"isogeny.dev/sidhcore/curve"
	"isogeny.dev/sidhcore/internal/fp"
	"isogeny.dev/sidhcore/internal/fp2"
	"isogeny.dev/sidhcore/params"
	"isogeny.dev/sidhcore/rng"
)

func main() {
	var verbose bool
	var iterations int
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	pflag.IntVarP(&iterations, "iterations", "n", 16, "number of random trials per scenario")
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sidh-selfcheck",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	p := params.SIKEp434()
	logger.Info("loaded parameter set", "name", p.Name, "eA", p.EA, "eB", p.EB, "maxAlice", p.MaxAlice, "maxBob", p.MaxBob)

	scenarios := []struct {
		name string
		run  func(*log.Logger, int) error
	}{
		{"fp-inverse-roundtrip", scenarioFpInverseRoundtrip},
		{"fp-sqrt-of-square", scenarioFpSqrtOfSquare},
		{"fp2-sqrt-of-square", scenarioFp2SqrtOfSquare},
		{"fp2-karatsuba-vs-square", scenarioFp2MulMatchesSquare},
		{"get-a-j-invariant-stable", scenarioGetAJInvariant},
		{"rng-nonzero-output", scenarioRNGNonzero},
	}

	failed := 0
	for _, s := range scenarios {
		logger.Debug("running scenario", "scenario", s.name)
		if err := s.run(logger, iterations); err != nil {
			logger.Error("scenario failed", "scenario", s.name, "err", err)
			failed++
			continue
		}
		logger.Info("scenario passed", "scenario", s.name)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d/%d scenarios failed\n", failed, len(scenarios))
		os.Exit(1)
	}
}

// scenarioFpInverseRoundtrip checks that Inv(Inv(a)) == a for nonzero
// a drawn from the RNG, mirroring property P-style checks but without
// a test framework dependency.
func scenarioFpInverseRoundtrip(logger *log.Logger, n int) error {
	for i := 0; i < n; i++ {
		a, err := randomNonzeroFp()
		if err != nil {
			return err
		}
		var inv, invInv fp.Elt
		inv.Inv(&a)
		invInv.Inv(&inv)
		if invInv.Equal(&a) != 1 {
			return fmt.Errorf("Inv(Inv(a)) != a on trial %d", i)
		}
	}
	return nil
}

// scenarioFpSqrtOfSquare checks that Sqrt(a^2)^2 == a^2 for random a:
// a^2 is always a square, so this never depends on luck.
func scenarioFpSqrtOfSquare(logger *log.Logger, n int) error {
	for i := 0; i < n; i++ {
		a, err := randomNonzeroFp()
		if err != nil {
			return err
		}
		var asq, root, rootSq fp.Elt
		asq.Square(&a)
		root.Sqrt(&asq)
		rootSq.Square(&root)
		if rootSq.Equal(&asq) != 1 {
			return fmt.Errorf("Sqrt(a^2)^2 != a^2 on trial %d", i)
		}
	}
	return nil
}

// scenarioFp2SqrtOfSquare is the GF(p^2) analogue, additionally
// checking the reported wasSquare flag is 1.
func scenarioFp2SqrtOfSquare(logger *log.Logger, n int) error {
	for i := 0; i < n; i++ {
		a, err := randomFp2()
		if err != nil {
			return err
		}
		var asq, root, rootSq fp2.Elt
		asq.Square(&a)
		_, wasSquare := root.SqrtFp2(&asq)
		if wasSquare != 1 {
			return fmt.Errorf("SqrtFp2(a^2) reported not-a-square on trial %d", i)
		}
		rootSq.Square(&root)
		if rootSq.Equal(&asq) != 1 {
			return fmt.Errorf("SqrtFp2(a^2)^2 != a^2 on trial %d", i)
		}
	}
	return nil
}

// scenarioFp2MulMatchesSquare checks that the Karatsuba Mul path and
// the dedicated Square path agree when multiplying an element by
// itself.
func scenarioFp2MulMatchesSquare(logger *log.Logger, n int) error {
	for i := 0; i < n; i++ {
		a, err := randomFp2()
		if err != nil {
			return err
		}
		var viaMul, viaSquare fp2.Elt
		viaMul.Mul(&a, &a)
		viaSquare.Square(&a)
		if viaMul.Equal(&viaSquare) != 1 {
			return fmt.Errorf("Mul(a,a) != Square(a) on trial %d", i)
		}
	}
	return nil
}

// scenarioGetAJInvariant checks that GetA followed by JInv (with C=1)
// is stable under recomputation: calling GetA twice on the same
// inputs must yield curves with the same j-invariant.
func scenarioGetAJInvariant(logger *log.Logger, n int) error {
	one := new(fp2.Elt).SetOne()
	for i := 0; i < n; i++ {
		xP, err := randomFp2()
		if err != nil {
			return err
		}
		xQ, err := randomFp2()
		if err != nil {
			return err
		}
		xR, err := randomFp2()
		if err != nil {
			return err
		}
		A1 := curve.GetA(&xP, &xQ, &xR)
		A2 := curve.GetA(&xP, &xQ, &xR)
		j1 := curve.JInv(A1, one)
		j2 := curve.JInv(A2, one)
		if j1.Equal(j2) != 1 {
			return fmt.Errorf("GetA/JInv not deterministic on trial %d", i)
		}
	}
	return nil
}

// scenarioRNGNonzero checks that rng.System produces at least one
// nonzero byte per call (an all-zero buffer after several calls would
// indicate a broken entropy source, not merely bad luck).
func scenarioRNGNonzero(logger *log.Logger, n int) error {
	for i := 0; i < n; i++ {
		buf := make([]byte, 32)
		if err := rng.System.Read(buf); err != nil {
			return err
		}
		allZero := true
		for _, b := range buf {
			if b != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			return fmt.Errorf("rng.System returned an all-zero buffer on trial %d", i)
		}
	}
	return nil
}

func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := rng.System.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// fpTopBits is the number of significant bits in the top byte of a
// fp.ByteLen-byte encoding: p434 is a 434-bit prime and fp.ByteLen*8 =
// 440, so the top byte only carries 434-8*(fp.ByteLen-1) = 2 bits.
// Raw RNG bytes must have the rest of that byte cleared before
// SetBytes, or the result is not a canonical (< p) representative.
const fpTopBits = 434 - 8*(fp.ByteLen-1)

func maskTopByte(b []byte) {
	b[len(b)-1] &= (1 << uint(fpTopBits)) - 1
}

func randomNonzeroFp() (fp.Elt, error) {
	var a fp.Elt
	for {
		b, err := randomBytes(fp.ByteLen)
		if err != nil {
			return a, err
		}
		maskTopByte(b)
		a.SetBytes(b)
		if a.IsZero() == 0 {
			return a, nil
		}
	}
}

func randomFp2() (fp2.Elt, error) {
	var a fp2.Elt
	b, err := randomBytes(fp2.ByteLen)
	if err != nil {
		return a, err
	}
	maskTopByte(b[:fp.ByteLen])
	maskTopByte(b)
	a.SetBytes(b)
	return a, nil
}
