package filestore

import "github.com/joshuapare/m2kit/filestore/pathkey"

// Record is one resolved file: a file data id and its normalized path.
// Records handed out by a Storage must not be modified.
type Record struct {
	ID   uint32 `json:"id"`
	Path string `json:"path"`
}

// NewRecord returns a record with path normalized (forward slashes, case kept).
func NewRecord(id uint32, path string) *Record {
	return &Record{ID: id, Path: pathkey.Normalize(path)}
}

// Key returns the path key the record is indexed under.
func (r *Record) Key() uint64 {
	return pathkey.Hash(r.Path)
}
