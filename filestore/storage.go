package filestore

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joshuapare/m2kit/filestore/pathkey"
	"github.com/joshuapare/m2kit/pkg/logger"
)

// DefaultDirName is the subfolder of the working directory used when no
// mappings directory is configured.
const DefaultDirName = "mappings"

const (
	// PathNone is what PathInfo returns for id 0.
	PathNone = "<none>"
	// PathNotFound is what PathInfo returns for an id with no record.
	PathNotFound = "<not found in listfile>"
)

// DefaultDirectory returns the working directory joined with DefaultDirName.
func DefaultDirectory() string {
	wd, err := os.Getwd()
	if err != nil {
		return DefaultDirName
	}
	return filepath.Join(wd, DefaultDirName)
}

// State is where a Storage is in its load lifecycle.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// Storage is the dual-keyed file identity index for one mappings directory.
//
// Records live in an insertion-ordered arena; byID and byHash map keys to
// arena slots. A slot is cleared (nil) when AddRecord replaces its record.
type Storage struct {
	dir string
	log *logger.Logger

	records []*Record
	byID    map[uint32]int
	byHash  map[uint64]int
	holes   int

	maxID   uint32
	failed  bool
	loading bool
	lastErr error
	report  *LoadReport
	capHint int
}

// New returns an empty Storage bound to dir. An empty dir means
// DefaultDirectory at load time. Nothing is read until the first query.
func New(dir string, opts ...Option) *Storage {
	s := &Storage{dir: dir, log: logger.Default}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// Directory returns the configured directory (possibly empty).
func (s *Storage) Directory() string { return s.dir }

// EffectiveDirectory returns the directory Load reads from.
func (s *Storage) EffectiveDirectory() string {
	if s.dir != "" {
		return s.dir
	}
	return DefaultDirectory()
}

// SetDirectory points the storage at dir and drops every loaded record.
func (s *Storage) SetDirectory(dir string) {
	s.dir = dir
	s.reset()
}

// Clear drops every record and clears the failure flag.
func (s *Storage) Clear() {
	s.reset()
}

func (s *Storage) reset() {
	s.records = nil
	s.byID = make(map[uint32]int, s.capHint)
	s.byHash = make(map[uint64]int, s.capHint)
	s.holes = 0
	s.maxID = 0
	s.failed = false
	s.lastErr = nil
	s.report = nil
}

// Load reads every listing in the directory unless records are already
// present. It returns false if the directory is unusable or a previous load
// failed and ResetLoadFailed has not been called since.
func (s *Storage) Load() bool {
	if len(s.byID) > 0 {
		return true
	}
	if !s.loadMappings() {
		s.failed = true
		return false
	}
	s.log.Infof("Loaded %d mapping entries", len(s.byID))
	return true
}

// ResetLoadFailed clears the sticky failure flag so the next query retries.
func (s *Storage) ResetLoadFailed() {
	s.failed = false
}

// Err returns the reason the last load failed, or nil.
func (s *Storage) Err() error {
	if !s.failed {
		return nil
	}
	return s.lastErr
}

// State reports the load lifecycle state.
func (s *Storage) State() State {
	switch {
	case s.loading:
		return StateLoading
	case len(s.byID) > 0:
		return StateLoaded
	case s.failed:
		return StateFailed
	default:
		return StateEmpty
	}
}

// Loaded reports whether the index holds any records.
func (s *Storage) Loaded() bool { return len(s.byID) > 0 }

// Len returns the number of records.
func (s *Storage) Len() int { return len(s.byID) }

// MaxID returns the highest id ever inserted since the last reset.
func (s *Storage) MaxID() uint32 { return s.maxID }

// Report returns the report of the most recent load attempt, or nil.
func (s *Storage) Report() *LoadReport { return s.report }

// ByID returns the record for id, loading the index first if needed.
func (s *Storage) ByID(id uint32) (*Record, bool) {
	s.Load()
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return s.records[i], true
}

// ByPath returns the record whose path matches path, ignoring separator
// style and ASCII case.
func (s *Storage) ByPath(path string) (*Record, bool) {
	s.Load()
	i, ok := s.byHash[pathkey.Hash(path)]
	if !ok {
		return nil, false
	}
	return s.records[i], true
}

// ByPartialPath returns the first record, in insertion order, whose path
// contains sub. Separators are normalized on both sides; case is not.
// This scans every record.
func (s *Storage) ByPartialPath(sub string) (*Record, bool) {
	s.Load()
	needle := pathkey.Normalize(sub)
	for _, rec := range s.records {
		if rec != nil && strings.Contains(pathkey.Normalize(rec.Path), needle) {
			return rec, true
		}
	}
	return nil, false
}

// Resolve looks up query as an id when it is a decimal number and as a
// partial path otherwise.
func (s *Storage) Resolve(query string) (*Record, bool) {
	query = strings.TrimSpace(query)
	if id, err := strconv.ParseUint(query, 10, 32); err == nil {
		return s.ByID(uint32(id))
	}
	return s.ByPartialPath(query)
}

// PathInfo describes id for messages: PathNone for 0, PathNotFound when
// there is no record, otherwise the record's path.
func (s *Storage) PathInfo(id uint32) string {
	if id == 0 {
		return PathNone
	}
	rec, ok := s.ByID(id)
	if !ok {
		return PathNotFound
	}
	return rec.Path
}

// Records calls fn for every record in insertion order until fn returns false.
func (s *Storage) Records(fn func(*Record) bool) {
	s.Load()
	for _, rec := range s.records {
		if rec != nil && !fn(rec) {
			return
		}
	}
}

// NextFreeID returns the first unused id at or after start. A zero start
// means MaxID()+1. It returns 0 when no id is free.
func (s *Storage) NextFreeID(start uint32) uint32 {
	s.Load()
	if start == 0 {
		if s.maxID == math.MaxUint32 {
			return 0
		}
		start = s.maxID + 1
	}
	for id := start; ; id++ {
		if _, used := s.byID[id]; !used {
			return id
		}
		if id == math.MaxUint32 {
			return 0
		}
	}
}

// AddRecord inserts rec directly, bypassing listing rules. Any record that
// holds rec's id or path key is replaced. The stored record is returned.
func (s *Storage) AddRecord(rec Record) *Record {
	stored := NewRecord(rec.ID, rec.Path)
	key := stored.Key()

	if i, ok := s.byID[stored.ID]; ok {
		s.evict(i)
	}
	if i, ok := s.byHash[key]; ok {
		s.evict(i)
	}
	s.install(stored, key)
	return stored
}

func (s *Storage) install(rec *Record, key uint64) {
	slot := len(s.records)
	s.records = append(s.records, rec)
	s.byID[rec.ID] = slot
	s.byHash[key] = slot
	if rec.ID > s.maxID {
		s.maxID = rec.ID
	}
}

func (s *Storage) evict(slot int) {
	rec := s.records[slot]
	if s.byID[rec.ID] == slot {
		delete(s.byID, rec.ID)
	}
	key := rec.Key()
	if i, ok := s.byHash[key]; ok && i == slot {
		delete(s.byHash, key)
	}
	s.records[slot] = nil
	s.holes++
	if s.holes > 64 && s.holes > len(s.records)/2 {
		s.compact()
	}
}

// compact drops cleared arena slots and renumbers both key maps.
func (s *Storage) compact() {
	live := make([]*Record, 0, len(s.records)-s.holes)
	for _, rec := range s.records {
		if rec == nil {
			continue
		}
		slot := len(live)
		live = append(live, rec)
		s.byID[rec.ID] = slot
		s.byHash[rec.Key()] = slot
	}
	s.records = live
	s.holes = 0
}
