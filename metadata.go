package filetime

import "os"

// FromLastModificationTime creates a timestamp from the last
// modification time recorded in the given metadata. It corresponds
// to the mtime field of stat on Unix-like systems and to
// ftLastWriteTime on Windows.
//
// The metadata is inspected as is; no additional system call is
// made.
func FromLastModificationTime(fi os.FileInfo) FileTime {
	return modificationTime(fi)
}

// FromLastAccessTime creates a timestamp from the last access time
// recorded in the given metadata. It corresponds to the atime field
// of stat on Unix-like systems and to ftLastAccessTime on Windows.
func FromLastAccessTime(fi os.FileInfo) FileTime {
	return accessTime(fi)
}

// FromCreationTime creates a timestamp from the creation (birth)
// time recorded in the given metadata, corresponding to the
// st_birthtime field of stat where one exists and to ftCreationTime
// on Windows.
//
// Not every platform records a birth time. Where none is available
// the second result is false; the access time is never substituted
// for a missing birth time.
func FromCreationTime(fi os.FileInfo) (FileTime, bool) {
	return creationTime(fi)
}

// modTimeFallback derives both timestamps from the portable ModTime
// when the metadata carries no native stat structure, e.g. when it
// comes from a synthetic fs.FileInfo implementation.
func modTimeFallback(fi os.FileInfo) FileTime {
	return FromTime(fi.ModTime())
}
