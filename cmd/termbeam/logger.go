package main

import (
	"log"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
)

// Logger provides leveled logging for the command layer. Interactive
// rendering owns the terminal, so log output is reserved for startup,
// reload, and teardown messages on stderr.
type Logger struct {
	verbose bool
	level   entities.LogLevel
}

// newLoggerWithLevel creates a new logger instance with a specific level
func newLoggerWithLevel(verbose bool, level entities.LogLevel) *Logger {
	return &Logger{
		verbose: verbose,
		level:   level,
	}
}

// shouldLog checks if the message should be logged based on level
func (l *Logger) shouldLog(msgLevel entities.LogLevel) bool {
	levelMap := map[entities.LogLevel]int{
		entities.LogLevelDebug: 0,
		entities.LogLevelInfo:  1,
		entities.LogLevelWarn:  2,
		entities.LogLevelError: 3,
	}

	return levelMap[msgLevel] >= levelMap[l.level]
}

// Debug logs debugging messages in verbose mode
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelDebug) && l.verbose {
		log.Printf("[DEBUG] "+msg, args...)
	}
}

// Info logs informational messages
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelInfo) && l.verbose {
		log.Printf("[INFO] "+msg, args...)
	}
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelWarn) {
		log.Printf("[WARN] "+msg, args...)
	}
}

// Error logs error messages
func (l *Logger) Error(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelError) {
		log.Printf("[ERROR] "+msg, args...)
	}
}
