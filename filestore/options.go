package filestore

import "github.com/joshuapare/m2kit/pkg/logger"

// Option configures a Storage.
type Option func(*Storage)

// WithLogger routes diagnostics to l instead of logger.Default.
func WithLogger(l *logger.Logger) Option {
	return func(s *Storage) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCapacity presizes the index for n records. Community listings hold
// close to two million entries.
func WithCapacity(n int) Option {
	return func(s *Storage) {
		if n > 0 {
			s.capHint = n
		}
	}
}
