package listfile

import (
	"fmt"

	"github.com/joshuapare/m2kit/internal/mmfile"
	"github.com/joshuapare/m2kit/internal/textenc"
)

// Listing is an opened listing file ready to be scanned.
type Listing struct {
	file *mmfile.File
	data []byte
	enc  textenc.Encoding
}

// Open maps the listing at path and decodes it to UTF-8 if it carries a BOM
// or is not valid UTF-8. The caller must Close the listing.
func Open(path string) (*Listing, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	f, err := mmfile.Open(path)
	if err != nil {
		return nil, fmt.Errorf("listfile: open %s: %w", path, err)
	}
	data, enc, err := textenc.Decode(f.Bytes())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("listfile: %s: %w", path, err)
	}
	return &Listing{file: f, data: data, enc: enc}, nil
}

// Encoding returns the detected source encoding.
func (l *Listing) Encoding() textenc.Encoding { return l.enc }

// Size returns the number of decoded bytes.
func (l *Listing) Size() int { return len(l.data) }

// Scan calls fn for every entry. See the package-level Scan.
func (l *Listing) Scan(fn func(line int, id uint32, path []byte) bool) Stats {
	return Scan(l.data, fn)
}

// Entries reads every entry into memory, copying paths.
func (l *Listing) Entries() ([]Entry, Stats) {
	var out []Entry
	st := l.Scan(func(_ int, id uint32, path []byte) bool {
		out = append(out, Entry{ID: id, Path: string(path)})
		return true
	})
	return out, st
}

// Close unmaps the file.
func (l *Listing) Close() error {
	l.data = nil
	return l.file.Close()
}
