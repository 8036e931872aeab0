//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris && !windows

package filetime

import "os"

// Targets without a known stat layout only expose the portable
// modification time, which doubles as the access time here.

func modificationTime(fi os.FileInfo) FileTime {
	return modTimeFallback(fi)
}

func accessTime(fi os.FileInfo) FileTime {
	return modTimeFallback(fi)
}

func creationTime(os.FileInfo) (FileTime, bool) {
	return FileTime{}, false
}
