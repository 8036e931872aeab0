package filetime

import (
	"os"

	"github.com/pkg/errors"
)

// ErrUnsupported is reported when the requested timestamp update
// cannot be expressed on the running platform at all, e.g. writing
// the timestamps of a symbolic link itself on a system without a
// link-level write primitive. Match it with errors.Is.
var ErrUnsupported = errors.New("file time operation not supported by this platform")

// SetFileTimes sets the access and modification times of the file
// at the given path. Symbolic links are followed, so the times of
// the link target change.
func SetFileTimes(path string, atime, mtime FileTime) error {
	return errors.Wrapf(setPathTimes(path, &atime, &mtime, false),
		"set times of %q", path)
}

// SetSymlinkFileTimes sets the access and modification times of the
// file at the given path without following symbolic links: when the
// path names a link, the times of the link itself change and its
// target is left alone.
func SetSymlinkFileTimes(path string, atime, mtime FileTime) error {
	return errors.Wrapf(setPathTimes(path, &atime, &mtime, true),
		"set link times of %q", path)
}

// SetFileMtime sets the modification time of the file at the given
// path, preserving its current access time. On platforms whose
// native primitive only accepts atomic pairs the access time is
// first read back from the file, so a concurrent access-time update
// between that read and the write can be lost.
func SetFileMtime(path string, mtime FileTime) error {
	return errors.Wrapf(setPathTimes(path, nil, &mtime, false),
		"set mtime of %q", path)
}

// SetFileAtime sets the access time of the file at the given path,
// preserving its current modification time. The same read-then-write
// caveat as for SetFileMtime applies.
func SetFileAtime(path string, atime FileTime) error {
	return errors.Wrapf(setPathTimes(path, &atime, nil, false),
		"set atime of %q", path)
}

// SetFileHandleTimes sets the access and modification times of an
// already opened file, avoiding a second path resolution. A nil
// pointer leaves the corresponding field unchanged; passing nil for
// both is a no-op. The file must be open for writing.
func SetFileHandleTimes(f *os.File, atime, mtime *FileTime) error {
	if atime == nil && mtime == nil {
		return nil
	}
	return errors.Wrapf(setHandleTimes(f, atime, mtime),
		"set times of handle %q", f.Name())
}

// fillTimes resolves a single-sided update into a full pair by
// reading the missing side from the target's current metadata, for
// write primitives that only accept atomic pairs.
func fillTimes(atime, mtime *FileTime, stat func() (os.FileInfo, error)) (FileTime, FileTime, error) {
	if atime != nil && mtime != nil {
		return *atime, *mtime, nil
	}
	fi, err := stat()
	if err != nil {
		return FileTime{}, FileTime{}, err
	}
	a, m := FromLastAccessTime(fi), FromLastModificationTime(fi)
	if atime != nil {
		a = *atime
	}
	if mtime != nil {
		m = *mtime
	}
	return a, m, nil
}
