//go:build !windows

package filetime

// FileTime seconds already count from the Unix epoch here.
const epochOffsetSeconds = 0
