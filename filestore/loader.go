package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joshuapare/m2kit/filestore/listfile"
	"github.com/joshuapare/m2kit/filestore/pathkey"
	"github.com/joshuapare/m2kit/pkg/logger"
)

// loadMappings reads every listing in the effective directory. It returns
// false only when the directory itself cannot be used; individual listing
// failures are reported and skipped.
func (s *Storage) loadMappings() bool {
	if s.failed {
		return false
	}

	dir := s.EffectiveDirectory()
	report := newLoadReport(dir)
	s.report = report
	start := time.Now()
	defer func() {
		report.Records = len(s.byID)
		report.MaxID = s.maxID
		report.Duration = time.Since(start)
	}()

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		s.lastErr = fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		s.log.Warnf("Mappings directory '%s' does not exist", dir)
		report.add(Diagnostic{Severity: SevWarning, Kind: KindMissingDirectory, File: dir, Message: s.lastErr.Error()})
		return false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.lastErr = fmt.Errorf("filestore: read %s: %w", dir, err)
		s.log.Errorf("Failed to enumerate mappings directory '%s': %v", dir, err)
		report.add(Diagnostic{Severity: SevError, Kind: KindUnreadableDirectory, File: dir, Message: err.Error()})
		return false
	}

	s.log.Infof("Loading mappings at '%s'", dir)

	s.loading = true
	defer func() { s.loading = false }()

	for _, entry := range entries {
		if entry.IsDir() || !listfile.Supported(entry.Name()) {
			continue
		}
		s.log.Infof("Loading mapping '%s'", entry.Name())
		s.loadListing(filepath.Join(dir, entry.Name()), report)
	}
	return true
}

// loadListing inserts every entry of one listing file. Errors are reported
// and never stop the caller from processing sibling files.
func (s *Storage) loadListing(path string, report *LoadReport) {
	name := filepath.Base(path)
	fr := FileReport{Name: name}
	defer func() { report.Files = append(report.Files, fr) }()

	l, err := listfile.Open(path)
	if err != nil {
		fr.Failed = true
		s.log.Errorf("Failed to parse mapping file '%s': %v", name, err)
		report.add(Diagnostic{Severity: SevError, Kind: KindUnreadableFile, File: name, Message: err.Error()})
		return
	}
	defer l.Close()
	fr.Encoding = string(l.Encoding())
	fr.Bytes = l.Size()

	timed := s.log.Enabled(logger.LevelInfo)
	var start time.Time
	if timed {
		start = time.Now()
	}
	st := l.Scan(func(line int, id uint32, raw []byte) bool {
		if s.insertListed(name, line, id, raw, report) {
			fr.Inserted++
		}
		return true
	})
	fr.Lines, fr.Entries, fr.Skipped = st.Lines, st.Entries, st.Skipped
	if timed {
		s.log.Infof("Parsed '%s' in %d ms", name, time.Since(start).Milliseconds())
	}
}

// insertListed applies listing insertion rules: the id must be free, then
// the path key must be free. A record becomes visible only when both are.
func (s *Storage) insertListed(file string, line int, id uint32, raw []byte, report *LoadReport) bool {
	if slot, taken := s.byID[id]; taken {
		prev := s.records[slot]
		s.log.Warnf("Duplicate file storage entry '%d':'%s' (already used: '%d':'%s'), skipping",
			id, raw, prev.ID, prev.Path)
		report.add(Diagnostic{
			Severity: SevWarning, Kind: KindDuplicateID, File: file, Line: line,
			ID: id, Path: string(raw), ExistingID: prev.ID, ExistingPath: prev.Path,
		})
		return false
	}

	key := pathkey.HashBytes(raw)
	if slot, taken := s.byHash[key]; taken {
		prev := s.records[slot]
		s.log.Warnf("Duplicate file storage entry '%d':'%s' (already used: '%d':'%s')",
			id, raw, prev.ID, prev.Path)
		report.add(Diagnostic{
			Severity: SevWarning, Kind: KindDuplicatePath, File: file, Line: line,
			ID: id, Path: string(raw), ExistingID: prev.ID, ExistingPath: prev.Path,
		})
		return false
	}

	s.install(&Record{ID: id, Path: pathkey.Normalize(string(raw))}, key)
	return true
}
