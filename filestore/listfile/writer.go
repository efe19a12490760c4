package listfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/m2kit/internal/fsync"
)

// WriteEntries writes entries in listing format, one per line.
func WriteEntries(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	var num [10]byte
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return err
		}
		bw.Write(strconv.AppendUint(num[:0], uint64(e.ID), 10))
		bw.WriteByte(Separator)
		bw.WriteString(e.Path)
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Append adds entries to the listing at path, creating it if needed, and
// flushes the data to disk before returning. If the existing file does not
// end in a newline one is inserted first so the new entry starts its own line.
func Append(path string, entries []Entry) error {
	if !Supported(path) {
		return fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("listfile: append %s: %w", path, err)
	}
	defer f.Close()

	needsNewline, err := endsWithoutNewline(f)
	if err != nil {
		return fmt.Errorf("listfile: append %s: %w", path, err)
	}
	if needsNewline {
		if _, err := f.Write([]byte{'\n'}); err != nil {
			return fmt.Errorf("listfile: append %s: %w", path, err)
		}
	}
	if err := WriteEntries(f, entries); err != nil {
		return fmt.Errorf("listfile: append %s: %w", path, err)
	}
	if err := fsync.File(f, false); err != nil {
		return fmt.Errorf("listfile: sync %s: %w", path, err)
	}
	return f.Close()
}

func endsWithoutNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	var last [1]byte
	if _, err := f.ReadAt(last[:], info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

func validateEntry(e Entry) error {
	if e.Path == "" {
		return fmt.Errorf("listfile: entry %d has an empty path", e.ID)
	}
	if strings.ContainsAny(e.Path, "\r\n") {
		return fmt.Errorf("listfile: entry %d path contains a line break", e.ID)
	}
	return nil
}
