package filetime

import (
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// utimensatProbe is the process-wide capability cache for the
// nanosecond-precision write primitives utimensat(2) and its
// fd-directed futimens form.
//
// The kernel either has the syscall or it does not, and that cannot
// change while the process lives, so the cache is monotonic: it
// starts out optimistic and latches to unavailable on the first
// ENOSYS, never resetting. Concurrent first uses may race on the
// latch, which is harmless since every racer derives the same
// terminal answer.
type utimensatProbe struct {
	unavailable uint32

	// call issues the raw syscall. Held as a field so tests can
	// substitute a failing kernel.
	call func(dirfd int, pathPtr unsafe.Pointer, times *[2]unix.Timespec, flags int) error
}

var nanoTimes = &utimensatProbe{call: rawUtimensat}

func (p *utimensatProbe) available() bool {
	return atomic.LoadUint32(&p.unavailable) == 0
}

func (p *utimensatProbe) markUnavailable() {
	atomic.StoreUint32(&p.unavailable, 1)
}

// utimensat invokes the nanosecond primitive against a path. The
// path is always converted, so an empty string reaches the kernel as
// an empty C string and fails with ENOENT like on every other
// platform, rather than degenerating into the descriptor form below.
func (p *utimensatProbe) utimensat(dirfd int, path string, times *[2]unix.Timespec, flags int) error {
	b, err := unix.BytePtrFromString(path)
	if err != nil {
		return err
	}
	return p.call(dirfd, unsafe.Pointer(b), times, flags)
}

// futimens directs the nanosecond primitive at a descriptor alone,
// which is utimensat(2) with a NULL path.
func (p *utimensatProbe) futimens(fd uintptr, times *[2]unix.Timespec) error {
	return p.call(int(fd), nil, times, 0)
}

func rawUtimensat(dirfd int, pathPtr unsafe.Pointer, times *[2]unix.Timespec, flags int) error {
	_, _, errno := unix.Syscall6(unix.SYS_UTIMENSAT,
		uintptr(dirfd), uintptr(pathPtr),
		uintptr(unsafe.Pointer(times)), uintptr(flags), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

// timespecOrOmit encodes an absent timestamp with the UTIME_OMIT
// sentinel in the nanoseconds slot, telling the kernel to leave the
// corresponding field untouched.
func timespecOrOmit(t *FileTime) (unix.Timespec, error) {
	if t == nil {
		return unix.Timespec{Nsec: unix.UTIME_OMIT}, nil
	}
	return unix.TimeToTimespec(t.Time())
}

func setPathTimes(path string, atime, mtime *FileTime, nofollow bool) error {
	flags := 0
	if nofollow {
		flags = unix.AT_SYMLINK_NOFOLLOW
	}
	if nanoTimes.available() {
		var times [2]unix.Timespec
		var err error
		if times[0], err = timespecOrOmit(atime); err != nil {
			return err
		}
		if times[1], err = timespecOrOmit(mtime); err != nil {
			return err
		}
		err = nanoTimes.utimensat(unix.AT_FDCWD, path, &times, flags)
		if err == nil || !errors.Is(err, unix.ENOSYS) {
			return err
		}
		nanoTimes.markUnavailable()
	}

	// Microsecond fallback for kernels predating utimensat(2). The
	// utimes family only takes atomic pairs, so a single-sided
	// request is filled from the file's current metadata first.
	statFn := func() (os.FileInfo, error) { return os.Stat(path) }
	if nofollow {
		statFn = func() (os.FileInfo, error) { return os.Lstat(path) }
	}
	a, m, err := fillTimes(atime, mtime, statFn)
	if err != nil {
		return err
	}
	tv := []unix.Timeval{timevalFor(a), timevalFor(m)}
	if nofollow {
		// Linux has no lutimes syscall of its own; libc emulates it
		// through the very utimensat that just failed. Report the
		// failure instead of silently following the link.
		return unix.Lutimes(path, tv)
	}
	return unix.Utimes(path, tv)
}

func setHandleTimes(f *os.File, atime, mtime *FileTime) error {
	if nanoTimes.available() {
		var times [2]unix.Timespec
		var err error
		if times[0], err = timespecOrOmit(atime); err != nil {
			return err
		}
		if times[1], err = timespecOrOmit(mtime); err != nil {
			return err
		}
		err = nanoTimes.futimens(f.Fd(), &times)
		if err == nil || !errors.Is(err, unix.ENOSYS) {
			return err
		}
		nanoTimes.markUnavailable()
	}

	a, m, err := fillTimes(atime, mtime, f.Stat)
	if err != nil {
		return err
	}
	return unix.Futimes(int(f.Fd()), []unix.Timeval{timevalFor(a), timevalFor(m)})
}
