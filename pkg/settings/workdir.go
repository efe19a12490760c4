package settings

import (
	"path/filepath"
	"strings"
)

// DetectWorkingDirectory strips relativePath from the end of fullPath and
// returns what remains, comparing components case-insensitively. It returns
// "" when the tail of fullPath does not match relativePath.
//
//	DetectWorkingDirectory("/data/World/Maps/a.m2", "world/maps/a.m2") == "/data"
func DetectWorkingDirectory(fullPath, relativePath string) string {
	full := filepath.Clean(filepath.FromSlash(fullPath))
	rel := filepath.FromSlash(strings.ReplaceAll(relativePath, `\`, "/"))
	if rel != "" {
		rel = filepath.Clean(rel)
	}

	for {
		if rel == "" || rel == "." {
			return full
		}
		if !strings.EqualFold(filepath.Base(rel), filepath.Base(full)) {
			return ""
		}
		rel = parentOf(rel)
		full = filepath.Dir(full)
	}
}

func parentOf(rel string) string {
	parent := filepath.Dir(rel)
	if parent == "." || parent == rel {
		return ""
	}
	return parent
}
