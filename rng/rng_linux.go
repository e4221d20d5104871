//go:build linux

package rng

import (
	"golang.org/x/sys/unix"
)

// systemRead fills p using the getrandom(2) syscall, retrying on
// EINTR and on short reads, mirroring the retry loop in the reference
// construction's randombytes() (which does the equivalent against
// /dev/urandom via read(2)).
func systemRead(p []byte) error {
	for len(p) > 0 {
		n, err := unix.Getrandom(p, 0)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return err
		}
		p = p[n:]
	}
	return nil
}
