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

// Linux keeps no birth time in struct stat. The kernel can report
// one through statx(2) on some filesystems, but that takes another
// system call against the path, which this metadata-only reader
// must not issue.
func creationTime(os.FileInfo) (FileTime, bool) {
	return FileTime{}, false
}
