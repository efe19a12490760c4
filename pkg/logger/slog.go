package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logPrefix     = "m2kit-"
	logSuffix     = ".log"
	retentionDays = 30
)

// SlogCallback adapts sl into a Callback. Custom messages are logged at
// Info with custom=true.
func SlogCallback(sl *slog.Logger) Callback {
	return func(level Level, text string) {
		switch level {
		case LevelError:
			sl.Error(text)
		case LevelWarning:
			sl.Warn(text)
		case LevelCustom:
			sl.LogAttrs(context.Background(), slog.LevelInfo, text, slog.Bool("custom", true))
		default:
			sl.Info(text)
		}
	}
}

// Options configures Init.
type Options struct {
	Enabled bool       // If false, Init attaches nothing
	LogDir  string     // Directory for log files. Default: ~/.m2kit/logs
	Level   slog.Level // Minimum slog level. Default: LevelInfo
}

// Init attaches a JSON slog sink writing to a dated file in opts.LogDir and
// removes log files older than 30 days. The returned closer detaches the
// sink and closes the file.
func Init(l *Logger, opts Options) (io.Closer, error) {
	if !opts.Enabled {
		return nopCloser{}, nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		logDir = filepath.Join(home, ".m2kit", "logs")
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	// Best-effort, errors ignored.
	cleanOldLogs(logDir, time.Now())

	filename := filepath.Join(logDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	sl := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	h := l.Attach(LevelAll, SlogCallback(sl))
	return &fileSink{l: l, h: h, f: f}, nil
}

type fileSink struct {
	l *Logger
	h Handle
	f *os.File
}

func (s *fileSink) Close() error {
	s.l.Detach(s.h)
	return s.f.Close()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// m2kit-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}
