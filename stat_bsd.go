//go:build darwin || freebsd || netbsd

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
	return FileTime{seconds: int64(d.Mtimespec.Sec), nanos: uint32(d.Mtimespec.Nsec)}
}

func accessTime(fi os.FileInfo) FileTime {
	d, ok := statT(fi)
	if !ok {
		return modTimeFallback(fi)
	}
	return FileTime{seconds: int64(d.Atimespec.Sec), nanos: uint32(d.Atimespec.Nsec)}
}

func creationTime(fi os.FileInfo) (FileTime, bool) {
	d, ok := statT(fi)
	if !ok {
		return FileTime{}, false
	}
	return FileTime{
		seconds: int64(d.Birthtimespec.Sec),
		nanos:   uint32(d.Birthtimespec.Nsec),
	}, true
}
