//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris && !windows

package filetime

import "os"

// Targets without a port of the native utimes family fall back to
// os.Chtimes, which golang supports everywhere. Chtimes always
// follows symbolic links and offers no descriptor form, so those
// variants report ErrUnsupported instead of approximating.

func setPathTimes(path string, atime, mtime *FileTime, nofollow bool) error {
	if nofollow {
		return ErrUnsupported
	}
	a, m, err := fillTimes(atime, mtime, func() (os.FileInfo, error) {
		return os.Stat(path)
	})
	if err != nil {
		return err
	}
	return os.Chtimes(path, a.Time(), m.Time())
}

func setHandleTimes(*os.File, *FileTime, *FileTime) error {
	return ErrUnsupported
}
