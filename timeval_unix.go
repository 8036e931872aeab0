//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris

package filetime

import "golang.org/x/sys/unix"

// timevalFor converts a timestamp for the microsecond-precision
// utimes family. Nanoseconds below a microsecond are truncated, not
// rounded.
func timevalFor(t FileTime) unix.Timeval {
	usec := int64(t.Nanoseconds()) / 1_000
	return unix.NsecToTimeval(t.Seconds()*nanosPerSecond + usec*1_000)
}
