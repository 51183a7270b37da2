package logger

import (
	"os"
	"sync"
)

// Log levels accepted by the application (config key log.level).
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the process-wide logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger writing to stderr.
// The first call fixes the level; later calls return the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = New(level, os.Stderr)
	})
	return globalLogger
}
