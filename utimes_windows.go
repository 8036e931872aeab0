package filetime

import (
	"os"

	"golang.org/x/sys/windows"
)

// Windows file times are counted in 100-nanosecond intervals since
// 1601-01-01, the same frame FileTime seconds use on this platform.
const filetimeIntervalsPerSecond = 10_000_000

func filetimeFromTicks(ticks uint64) FileTime {
	return FileTime{
		seconds: int64(ticks / filetimeIntervalsPerSecond),
		nanos:   uint32(ticks % filetimeIntervalsPerSecond * 100),
	}
}

// nativeFiletime converts a timestamp into the low/high interval
// words SetFileTime consumes. An absent timestamp maps to nil, which
// SetFileTime interprets as "no change"; it must never be encoded as
// the zero interval, which would mean 1601.
func nativeFiletime(t *FileTime) *windows.Filetime {
	if t == nil {
		return nil
	}
	ticks := t.Seconds()*filetimeIntervalsPerSecond + int64(t.Nanoseconds())/100
	return &windows.Filetime{
		LowDateTime:  uint32(ticks),
		HighDateTime: uint32(ticks >> 32),
	}
}

func setPathTimes(path string, atime, mtime *FileTime, nofollow bool) error {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	// FILE_FLAG_BACKUP_SEMANTICS admits directory handles as well.
	attrs := uint32(windows.FILE_FLAG_BACKUP_SEMANTICS)
	if nofollow {
		// Open the reparse point itself so the times of the link,
		// not of its target, are written.
		attrs |= windows.FILE_FLAG_OPEN_REPARSE_POINT
	}
	h, err := windows.CreateFile(pathp,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, attrs, 0)
	if err != nil {
		return err
	}
	err = windows.SetFileTime(h, nil, nativeFiletime(atime), nativeFiletime(mtime))
	// The handle is released even when SetFileTime failed, and a
	// close failure must not mask the write error.
	if cerr := windows.CloseHandle(h); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func setHandleTimes(f *os.File, atime, mtime *FileTime) error {
	return windows.SetFileTime(windows.Handle(f.Fd()),
		nil, nativeFiletime(atime), nativeFiletime(mtime))
}
