// Package filetime reads and writes file access, modification and
// creation timestamps across platforms.
//
// Operating systems disagree on what a file timestamp is: Unix-like
// systems count seconds plus nanoseconds since 1970 in timespec pairs,
// while Windows counts 100-nanosecond intervals since 1601. FileTime
// normalizes both into a single orderable value, and the Set functions
// map it back onto whatever primitive the running system provides, at
// the best precision the running kernel actually supports.
package filetime
