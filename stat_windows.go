package filetime

import (
	"os"
	"syscall"
)

func attrData(fi os.FileInfo) (*syscall.Win32FileAttributeData, bool) {
	d, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	return d, ok && d != nil
}

func modificationTime(fi os.FileInfo) FileTime {
	d, ok := attrData(fi)
	if !ok {
		return modTimeFallback(fi)
	}
	return filetimeFromTicks(ticksOf(d.LastWriteTime))
}

func accessTime(fi os.FileInfo) FileTime {
	d, ok := attrData(fi)
	if !ok {
		return modTimeFallback(fi)
	}
	return filetimeFromTicks(ticksOf(d.LastAccessTime))
}

// Windows records the creation time for every file.
func creationTime(fi os.FileInfo) (FileTime, bool) {
	d, ok := attrData(fi)
	if !ok {
		return FileTime{}, false
	}
	return filetimeFromTicks(ticksOf(d.CreationTime)), true
}

func ticksOf(ft syscall.Filetime) uint64 {
	return uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
}
