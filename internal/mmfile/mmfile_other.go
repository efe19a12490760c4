//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// Open reads the entire file when mmap is not available.
func Open(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("mmfile: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{data: data, unmap: noop}, nil
}
