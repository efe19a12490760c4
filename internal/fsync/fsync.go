// Package fsync flushes appended listing data to stable storage.
package fsync

import "os"

// File flushes f's data to disk. When full is set, platforms that distinguish
// a drive-cache flush from a regular sync (macOS) use the stronger one.
func File(f *os.File, full bool) error {
	if f == nil {
		return os.ErrInvalid
	}
	return fdatasync(f, full)
}
