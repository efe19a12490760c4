// Package listfile reads and writes listing files: plain-text files mapping
// numeric file data ids to asset paths, one "<id>;<path>" pair per line.
//
// The id is the run of decimal digits that starts the line; bytes between
// those digits and the first ';' are ignored. Lines without a ';', without a
// leading digit, with an id that overflows uint32, or with an empty path
// (after trailing CR/LF are trimmed) are skipped silently. Text after the
// first ';' is the path verbatim, including further ';'.
package listfile

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
)

// Separator divides the id from the path on each line.
const Separator = ';'

// Extensions lists the file extensions recognized as listings (lower case).
var Extensions = []string{".csv", ".txt"}

// ErrUnsupported indicates a file whose extension is not a listing extension.
var ErrUnsupported = errors.New("listfile: unsupported file extension")

// Entry is one id/path pair as written in a listing.
type Entry struct {
	ID   uint32 `json:"id"`
	Path string `json:"path"`
}

// Stats counts what a scan saw.
type Stats struct {
	Lines   int // Non-empty lines
	Entries int // Lines that parsed into an id/path pair
	Skipped int // Malformed lines that were ignored
}

// Supported reports whether name has a listing extension (case-insensitive).
// Only the final extension counts: "files.csv.bak" is not a listing.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// ParseLine splits a single line (without its '\n') into id and path.
// The returned path aliases line.
func ParseLine(line []byte) (uint32, []byte, bool) {
	sep := -1
	for i, c := range line {
		if c == Separator {
			sep = i
			break
		}
	}
	if sep < 0 {
		return 0, nil, false
	}

	id, ok := parseID(line[:sep])
	if !ok {
		return 0, nil, false
	}

	path := line[sep+1:]
	for len(path) > 0 && (path[len(path)-1] == '\r' || path[len(path)-1] == '\n') {
		path = path[:len(path)-1]
	}
	if len(path) == 0 {
		return 0, nil, false
	}
	return id, path, true
}

// parseID reads the run of decimal digits at the start of b. Anything after
// the digits is ignored, so "12ab" and "13 " are ids 12 and 13. It fails when
// b does not start with a digit or the digits overflow uint32.
func parseID(b []byte) (uint32, bool) {
	var v uint64
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + uint64(c-'0')
		if v > math.MaxUint32 {
			return 0, false
		}
		n++
	}
	if n == 0 {
		return 0, false
	}
	return uint32(v), true
}

// Scan walks data line by line and calls fn for every well-formed entry.
// line is the 1-based line number; path aliases data and must be copied if
// retained. Returning false from fn stops the scan.
func Scan(data []byte, fn func(line int, id uint32, path []byte) bool) Stats {
	var st Stats
	lineNo := 0
	for len(data) > 0 {
		lineNo++
		end := indexNewline(data)
		var line []byte
		if end < 0 {
			line, data = data, nil
		} else {
			line, data = data[:end], data[end+1:]
		}
		if len(line) == 0 || (len(line) == 1 && line[0] == '\r') {
			continue
		}
		st.Lines++

		id, path, ok := ParseLine(line)
		if !ok {
			st.Skipped++
			continue
		}
		st.Entries++
		if !fn(lineNo, id, path) {
			break
		}
	}
	return st
}

func indexNewline(b []byte) int {
	for i, c := range b {
		if c == '\n' {
			return i
		}
	}
	return -1
}
