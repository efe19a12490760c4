package filestore

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Severity classifies a diagnostic.
type Severity int

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DiagKind names what went wrong.
type DiagKind string

const (
	KindMissingDirectory    DiagKind = "missing-directory"
	KindUnreadableDirectory DiagKind = "unreadable-directory"
	KindUnreadableFile      DiagKind = "unreadable-file"
	KindDuplicateID         DiagKind = "duplicate-id"
	KindDuplicatePath       DiagKind = "duplicate-path"
)

// Diagnostic is one reported problem from a load. For duplicates, ID/Path
// describe the dropped line and ExistingID/ExistingPath the record that kept
// the key.
type Diagnostic struct {
	Severity     Severity `json:"severity"`
	Kind         DiagKind `json:"kind"`
	File         string   `json:"file,omitempty"`
	Line         int      `json:"line,omitempty"`
	ID           uint32   `json:"id,omitempty"`
	Path         string   `json:"path,omitempty"`
	ExistingID   uint32   `json:"existing_id,omitempty"`
	ExistingPath string   `json:"existing_path,omitempty"`
	Message      string   `json:"message,omitempty"`
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case KindDuplicateID, KindDuplicatePath:
		return fmt.Sprintf("%s:%d: %s %d:%q (already used: %d:%q)",
			d.File, d.Line, d.Kind, d.ID, d.Path, d.ExistingID, d.ExistingPath)
	default:
		return fmt.Sprintf("%s: %s: %s", d.File, d.Kind, d.Message)
	}
}

// FileReport summarizes one listing file.
type FileReport struct {
	Name     string `json:"name"`
	Encoding string `json:"encoding,omitempty"`
	Bytes    int    `json:"bytes"`
	Lines    int    `json:"lines"`
	Entries  int    `json:"entries"`
	Skipped  int    `json:"skipped"`
	Inserted int    `json:"inserted"`
	Failed   bool   `json:"failed,omitempty"`
}

// Summary counts diagnostics by severity.
type Summary struct {
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// LoadReport describes one load attempt.
type LoadReport struct {
	Directory   string        `json:"directory"`
	Files       []FileReport  `json:"files"`
	Diagnostics []Diagnostic  `json:"diagnostics"`
	Summary     Summary       `json:"summary"`
	Records     int           `json:"records"`
	MaxID       uint32        `json:"max_id"`
	Duration    time.Duration `json:"duration"`
}

func newLoadReport(dir string) *LoadReport {
	return &LoadReport{Directory: dir}
}

func (r *LoadReport) add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	switch d.Severity {
	case SevWarning:
		r.Summary.Warnings++
	case SevError:
		r.Summary.Errors++
	}
}

// ByKind returns the diagnostics of one kind in report order.
func (r *LoadReport) ByKind(kind DiagKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (r *LoadReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// Skipped returns the number of malformed lines across all files.
func (r *LoadReport) Skipped() int {
	n := 0
	for _, f := range r.Files {
		n += f.Skipped
	}
	return n
}

// FormatText writes a human-readable summary.
func (r *LoadReport) FormatText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Directory: %s\n", r.Directory)
	fmt.Fprintf(&b, "Records:   %d (max id %d)\n", r.Records, r.MaxID)
	fmt.Fprintf(&b, "Duration:  %s\n", r.Duration.Round(time.Millisecond))
	for _, f := range r.Files {
		status := "ok"
		if f.Failed {
			status = "FAILED"
		}
		fmt.Fprintf(&b, "  %-32s %6s  bytes=%d lines=%d inserted=%d skipped=%d\n",
			f.Name, status, f.Bytes, f.Lines, f.Inserted, f.Skipped)
	}
	fmt.Fprintf(&b, "Warnings: %d, Errors: %d\n", r.Summary.Warnings, r.Summary.Errors)
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&b, "  [%s] %s\n", d.Severity, d)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
