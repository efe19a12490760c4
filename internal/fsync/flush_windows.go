//go:build windows

package fsync

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync flushes through FlushFileBuffers. The full parameter is ignored.
func fdatasync(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
