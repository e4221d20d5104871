//go:build !linux

package rng

import crand "crypto/rand"

// systemRead fills p via the standard library's CSPRNG. golang.org/x/sys
// does not expose a uniform non-Linux random-bytes primitive the way
// it exposes Getrandom for Linux (BCryptGenRandom lives in
// golang.org/x/sys/windows/... and would be its own per-OS path for a
// single function this module only needs in its Linux-first
// distribution), so non-Linux platforms use crypto/rand directly;
// see DESIGN.md.
func systemRead(p []byte) error {
	_, err := crand.Read(p)
	return err
}
