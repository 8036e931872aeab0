package filetime

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// resetProbe points the probe at a stub kernel and restores the real
// syscall and the latch when the test finishes.
func resetProbe(t *testing.T, stub func() error) *uint32 {
	t.Helper()
	calls := new(uint32)
	nanoTimes.call = func(int, unsafe.Pointer, *[2]unix.Timespec, int) error {
		atomic.AddUint32(calls, 1)
		return stub()
	}
	t.Cleanup(func() {
		nanoTimes.call = rawUtimensat
		atomic.StoreUint32(&nanoTimes.unavailable, 0)
	})
	return calls
}

func probeTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "probe")
	require.NoError(t, os.WriteFile(path, []byte("contents"), 0o644))
	return path
}

func TestFallbackLatchesOnENOSYS(t *testing.T) {
	calls := resetProbe(t, func() error { return unix.ENOSYS })
	path := probeTestFile(t)

	atime := FromUnixTime(843_077_000, 123_456_789)
	mtime := FromUnixTime(967_844_100, 987_654_321)

	// The first write probes the stub kernel once, latches it as
	// unavailable and completes on the microsecond path.
	require.NoError(t, SetFileTimes(path, atime, mtime))
	require.Equal(t, uint32(1), atomic.LoadUint32(calls))
	require.False(t, nanoTimes.available())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	gotAtime := FromLastAccessTime(fi)
	gotMtime := FromLastModificationTime(fi)

	// Sub-microsecond digits are truncated, never rounded.
	require.Equal(t, atime.Seconds(), gotAtime.Seconds())
	require.Equal(t, uint32(123_456_000), gotAtime.Nanoseconds())
	require.Equal(t, mtime.Seconds(), gotMtime.Seconds())
	require.Equal(t, uint32(987_654_000), gotMtime.Nanoseconds())

	// Later writes skip the probe entirely: the latch is sticky.
	require.NoError(t, SetFileMtime(path, FromUnixTime(10_000, 0)))
	require.Equal(t, uint32(1), atomic.LoadUint32(calls))

	fi, err = os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(10_000), FromLastModificationTime(fi).UnixSeconds())
	// The single-sided fallback refilled the access time from the
	// file instead of zeroing it.
	require.Equal(t, atime.Seconds(), FromLastAccessTime(fi).Seconds())
}

func TestHandleFallbackLatchesOnENOSYS(t *testing.T) {
	calls := resetProbe(t, func() error { return unix.ENOSYS })
	path := probeTestFile(t)

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	defer f.Close()

	mtime := FromUnixTime(1_500_000_000, 250_000_000)
	require.NoError(t, SetFileHandleTimes(f, nil, &mtime))
	require.Equal(t, uint32(1), atomic.LoadUint32(calls))
	require.False(t, nanoTimes.available())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, mtime, FromLastModificationTime(fi))
}

func TestProbeKeepsOtherErrors(t *testing.T) {
	calls := resetProbe(t, func() error { return unix.EPERM })
	path := probeTestFile(t)

	err := SetFileTimes(path, Zero, Zero)
	require.Error(t, err)
	require.True(t, errors.Is(err, unix.EPERM), "want EPERM, got %v", err)

	// A kernel that rejects the call for unrelated reasons must not
	// poison the capability cache.
	require.True(t, nanoTimes.available())
	require.Equal(t, uint32(1), atomic.LoadUint32(calls))
}

// Only the descriptor form may hand a NULL path to the kernel; the
// path form always converts, so even an empty path stays a path.
func TestUtimensatPathForms(t *testing.T) {
	var nullPaths, realPaths int
	nanoTimes.call = func(_ int, pathPtr unsafe.Pointer, _ *[2]unix.Timespec, _ int) error {
		if pathPtr == nil {
			nullPaths++
		} else {
			realPaths++
		}
		return nil
	}
	t.Cleanup(func() {
		nanoTimes.call = rawUtimensat
		atomic.StoreUint32(&nanoTimes.unavailable, 0)
	})
	path := probeTestFile(t)

	require.NoError(t, SetFileTimes(path, Zero, Zero))
	require.Equal(t, 1, realPaths)
	require.Equal(t, 0, nullPaths)

	require.NoError(t, SetFileTimes("", Zero, Zero))
	require.Equal(t, 2, realPaths)
	require.Equal(t, 0, nullPaths)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	mtime := FromUnixTime(10_000, 0)
	require.NoError(t, SetFileHandleTimes(f, nil, &mtime))
	require.Equal(t, 2, realPaths)
	require.Equal(t, 1, nullPaths)
}

func TestOmitSentinelEncoding(t *testing.T) {
	ts, err := timespecOrOmit(nil)
	require.NoError(t, err)
	require.EqualValues(t, unix.UTIME_OMIT, ts.Nsec)

	ft := FromUnixTime(42, 99)
	ts, err = timespecOrOmit(&ft)
	require.NoError(t, err)
	require.EqualValues(t, 42, ts.Sec)
	require.EqualValues(t, 99, ts.Nsec)
}
