// Package logging provides a small leveled wrapper around the standard
// log package, gating progress and diagnostic volume by a configured
// verbosity the way the UCI protocol gates "info string" output.
package logging

import (
	"log"
	"os"
)

// Level mirrors the --verbose flag's 0..4 range.
type Level int

const (
	LevelSilent Level = iota
	LevelNormal
	LevelVerbose
	LevelDebug
	LevelTrace
)

// Logger gates *log.Logger output by level.
type Logger struct {
	level Level
	std   *log.Logger
}

// New builds a Logger writing to os.Stderr with a timestamp and
// calling file/line prefix on every line, gated at level.
func New(level Level) *Logger {
	return &Logger{
		level: level,
		std:   log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile),
	}
}

func (l *Logger) log(at Level, format string, args ...interface{}) {
	if l.level >= at {
		l.std.Printf(format, args...)
	}
}

// Errorf logs unconditionally; it is the only level that must never be
// suppressed regardless of configured verbosity.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.std.Printf(format, args...)
}

// Infof logs phase banners and per-phase summaries; visible at
// LevelNormal and above.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(LevelNormal, format, args...)
}

// Progressf logs progress counters ("Progress: K (dD)"); visible at
// LevelVerbose and above.
func (l *Logger) Progressf(format string, args ...interface{}) {
	l.log(LevelVerbose, format, args...)
}

// Debugf logs per-phase diagnostics; visible at LevelDebug and above.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Tracef logs per-node detail; visible only at LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(LevelTrace, format, args...)
}
