package listfile

import (
	"os"
	"time"
)

// DefaultMaxAge is how old a downloaded community listing may get before it
// is reported as outdated.
const DefaultMaxAge = 7 * 24 * time.Hour

// IsStale reports whether the listing at path was last modified more than
// maxAge before now. A missing file is stale.
func IsStale(path string, maxAge time.Duration, now time.Time) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return now.Sub(info.ModTime()) > maxAge, nil
}
