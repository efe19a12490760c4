package filestore

import "errors"

// ErrNotDirectory indicates the mappings directory is missing or not a directory.
var ErrNotDirectory = errors.New("filestore: mappings directory does not exist")
