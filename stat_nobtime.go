//go:build openbsd || dragonfly || solaris

package filetime

import (
	"os"
	"syscall"
)

func statT(fi os.FileInfo) (*syscall.Stat_t, bool) {
	d, ok := fi.Sys().(*syscall.Stat_t)
	return d, ok && d != nil
}

func modificationTime(fi os.FileInfo) FileTime {
	d, ok := statT(fi)
	if !ok {
		return modTimeFallback(fi)
	}
	return FileTime{seconds: int64(d.Mtim.Sec), nanos: uint32(d.Mtim.Nsec)}
}

func accessTime(fi os.FileInfo) FileTime {
	d, ok := statT(fi)
	if !ok {
		return modTimeFallback(fi)
	}
	return FileTime{seconds: int64(d.Atim.Sec), nanos: uint32(d.Atim.Nsec)}
}

// These systems expose no birth time through the stat structure
// golang hands out in Sys.
func creationTime(os.FileInfo) (FileTime, bool) {
	return FileTime{}, false
}
