package filetime

import (
	"fmt"
	"time"
)

// nanosPerSecond bounds the nanosecond part of a FileTime.
const nanosPerSecond = 1_000_000_000

// FileTime is the timestamp of a file.
//
// The seconds held inside are platform specific: they count from
// 1970-01-01 on Unix-like systems and from 1601-01-01 on Windows.
// Values produced on the same platform compare and print
// consistently; use UnixSeconds to obtain a portable reading.
//
// FileTime is a plain immutable value, cheap to copy and safe to
// compare with ==.
type FileTime struct {
	seconds int64
	nanos   uint32
}

// Zero is the zero timestamp, useful as the base of a max chain
// when folding over a set of timestamps.
var Zero FileTime

// FromUnixTime creates a timestamp from seconds and nanoseconds
// relative to 1970-01-01 UTC, regardless of the platform the code
// runs on. Nanoseconds of a second or more are carried into the
// seconds part.
func FromUnixTime(seconds int64, nanos uint32) FileTime {
	seconds += int64(nanos / nanosPerSecond)
	nanos %= nanosPerSecond
	return FileTime{seconds: seconds + epochOffsetSeconds, nanos: nanos}
}

// FromTime creates a timestamp from a time.Time.
func FromTime(t time.Time) FileTime {
	return FromUnixTime(t.Unix(), uint32(t.Nanosecond()))
}

// Seconds returns the whole seconds of the timestamp.
//
// The value is platform specific: it counts from 1970 on Unix-like
// systems and from 1601 on Windows, so it must not be exchanged
// between platforms without rebasing. See UnixSeconds.
func (t FileTime) Seconds() int64 {
	return t.seconds
}

// UnixSeconds returns the whole seconds of the timestamp relative
// to 1970-01-01 UTC, which is portable across platforms.
func (t FileTime) UnixSeconds() int64 {
	return t.seconds - epochOffsetSeconds
}

// Nanoseconds returns the sub-second part of the timestamp. The
// result is always less than one billion.
func (t FileTime) Nanoseconds() uint32 {
	return t.nanos
}

// Time converts the timestamp into a time.Time in UTC.
func (t FileTime) Time() time.Time {
	return time.Unix(t.UnixSeconds(), int64(t.nanos)).UTC()
}

// Compare orders two timestamps lexicographically by their seconds
// and then nanoseconds, returning -1, 0 or +1.
func (t FileTime) Compare(u FileTime) int {
	switch {
	case t.seconds < u.seconds:
		return -1
	case t.seconds > u.seconds:
		return +1
	case t.nanos < u.nanos:
		return -1
	case t.nanos > u.nanos:
		return +1
	}
	return 0
}

// Before reports whether t is earlier than u.
func (t FileTime) Before(u FileTime) bool {
	return t.Compare(u) < 0
}

// After reports whether t is later than u.
func (t FileTime) After(u FileTime) bool {
	return t.Compare(u) > 0
}

// String formats the timestamp as "{seconds}.{nanos}s" with the
// nanoseconds zero padded to nine digits.
func (t FileTime) String() string {
	return fmt.Sprintf("%d.%09ds", t.seconds, t.nanos)
}
