// Package mmfile maps listing files into memory for read-only scanning.
package mmfile

// File is a read-only view of a file's contents. On unix the bytes are backed
// by a shared mapping; elsewhere they are a heap copy. Bytes must not be used
// after Close.
type File struct {
	data  []byte
	unmap func() error
}

// Bytes returns the file contents.
func (f *File) Bytes() []byte {
	if f == nil {
		return nil
	}
	return f.data
}

// Len returns the number of mapped bytes.
func (f *File) Len() int {
	return len(f.Bytes())
}

// Close releases the mapping. Calling Close more than once is a no-op.
func (f *File) Close() error {
	if f == nil || f.unmap == nil {
		return nil
	}
	unmap := f.unmap
	f.unmap = nil
	f.data = nil
	return unmap()
}

func noop() error { return nil }
