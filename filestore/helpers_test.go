package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/m2kit/pkg/logger"
)

// writeListing creates dir/name with the given lines joined by "\n".
func writeListing(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

type logLine struct {
	level logger.Level
	text  string
}

// captureLog returns a logger and the slice its messages are appended to.
func captureLog(t *testing.T) (*logger.Logger, *[]logLine) {
	t.Helper()
	l := logger.New()
	var lines []logLine
	l.Attach(logger.LevelAll, func(level logger.Level, text string) {
		lines = append(lines, logLine{level, text})
	})
	return l, &lines
}

func countLevel(lines []logLine, level logger.Level, contains string) int {
	n := 0
	for _, l := range lines {
		if l.level == level && strings.Contains(l.text, contains) {
			n++
		}
	}
	return n
}

func mkdir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
