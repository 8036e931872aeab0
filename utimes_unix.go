//go:build darwin || freebsd || netbsd || openbsd || dragonfly || solaris

package filetime

import (
	"os"

	"golang.org/x/sys/unix"
)

func setPathTimes(path string, atime, mtime *FileTime, nofollow bool) error {
	statFn := func() (os.FileInfo, error) { return os.Stat(path) }
	if nofollow {
		statFn = func() (os.FileInfo, error) { return os.Lstat(path) }
	}
	a, m, err := fillTimes(atime, mtime, statFn)
	if err != nil {
		return err
	}
	ts, err := timespecPair(a, m)
	if err != nil {
		return err
	}
	flags := 0
	if nofollow {
		flags = unix.AT_SYMLINK_NOFOLLOW
	}
	return unix.UtimesNanoAt(unix.AT_FDCWD, path, ts, flags)
}

// setHandleTimes updates the timestamps of an open descriptor with
// futimes. The BSD libcs golang links against do not all carry
// futimens, so handle writes settle for microsecond precision here.
func setHandleTimes(f *os.File, atime, mtime *FileTime) error {
	a, m, err := fillTimes(atime, mtime, f.Stat)
	if err != nil {
		return err
	}
	return unix.Futimes(int(f.Fd()), []unix.Timeval{timevalFor(a), timevalFor(m)})
}

func timespecPair(atime, mtime FileTime) ([]unix.Timespec, error) {
	ts := make([]unix.Timespec, 2)
	var err error
	if ts[0], err = unix.TimeToTimespec(atime.Time()); err != nil {
		return nil, err
	}
	if ts[1], err = unix.TimeToTimespec(mtime.Time()); err != nil {
		return nil, err
	}
	return ts, nil
}
