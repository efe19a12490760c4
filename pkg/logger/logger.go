// Package logger is the leveled message sink used by m2kit.
//
// Library code formats a message once and hands it to every callback
// attached for the message's level. Nothing is written anywhere unless a
// callback is attached; formatting is skipped entirely in that case.
//
// Callbacks are attached with a level mask:
//
//	h := logger.Default.Attach(logger.LevelWarning|logger.LevelError, func(lvl logger.Level, text string) {
//	    fmt.Fprintf(os.Stderr, "[%s] %s\n", lvl, text)
//	})
//	defer logger.Default.Detach(h)
//
// SlogCallback and Init route messages into log/slog.
package logger

import (
	"fmt"
	"sync"
)

// Level is a message category. Levels are bit flags so a callback can
// subscribe to several at once.
type Level uint8

const (
	LevelInfo Level = 1 << iota
	LevelError
	LevelWarning
	LevelCustom

	LevelAll = LevelInfo | LevelError | LevelWarning | LevelCustom
)

// String returns the level tag.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelCustom:
		return "custom"
	default:
		return fmt.Sprintf("level(%#x)", uint8(l))
	}
}

// Callback receives a level tag and the fully formatted message.
type Callback func(level Level, text string)

// Handle identifies an attached callback for Detach.
type Handle uint64

type sink struct {
	handle Handle
	mask   Level
	fn     Callback
}

// Logger fans messages out to attached callbacks. It is safe for concurrent use.
type Logger struct {
	mu    sync.RWMutex
	next  Handle
	sinks []sink
}

// New returns a Logger with no callbacks attached.
func New() *Logger {
	return &Logger{}
}

// Default is the process-wide logger used when no other is configured.
var Default = New()

// Attach registers fn for every level in mask and returns a handle for Detach.
// A zero mask attaches nothing and returns 0.
func (l *Logger) Attach(mask Level, fn Callback) Handle {
	if mask&LevelAll == 0 || fn == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	l.sinks = append(l.sinks, sink{handle: l.next, mask: mask & LevelAll, fn: fn})
	return l.next
}

// Detach removes the callback registered under h. It reports whether a
// callback was removed.
func (l *Logger) Detach(h Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.sinks {
		if s.handle == h {
			l.sinks = append(l.sinks[:i], l.sinks[i+1:]...)
			return true
		}
	}
	return false
}

// Enabled reports whether any callback listens for level.
func (l *Logger) Enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, s := range l.sinks {
		if s.mask&level != 0 {
			return true
		}
	}
	return false
}

// Logf formats the message and delivers it to every callback for level.
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.mu.RLock()
	var targets []Callback
	for _, s := range l.sinks {
		if s.mask&level != 0 {
			targets = append(targets, s.fn)
		}
	}
	l.mu.RUnlock()

	if len(targets) == 0 {
		return
	}
	text := fmt.Sprintf(format, args...)
	for _, fn := range targets {
		fn(level, text)
	}
}

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...any) { l.Logf(LevelInfo, format, args...) }

// Warnf logs at LevelWarning.
func (l *Logger) Warnf(format string, args ...any) { l.Logf(LevelWarning, format, args...) }

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LevelError, format, args...) }

// Customf logs at LevelCustom.
func (l *Logger) Customf(format string, args ...any) { l.Logf(LevelCustom, format, args...) }
