// Package applog provides the run log for rmsd2matlab: every message is
// written both to a log file and to the console, so a pipeline run leaves a
// durable record next to its output. The logger is passed explicitly into
// each stage rather than living in package-global state.
package applog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/carbocation/pfx"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	}

	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps the -log-level flag values onto a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	}

	return LevelInfo, fmt.Errorf("unknown log level %q (want DEBUG, INFO, WARNING, ERROR, or CRITICAL)", s)
}

type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	file    *os.File
	minimum Level
}

// New creates a logger that writes to the file at path and to the console. A
// pre-existing file at path is removed first, so each run starts a fresh log.
func New(path string, minimum Level) (*Logger, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, pfx.Err(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return &Logger{
		out:     io.MultiWriter(f, os.Stderr),
		file:    f,
		minimum: minimum,
	}, nil
}

func (l *Logger) Close() error {
	return l.file.Close()
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	l.logf(LevelWarning, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.logf(LevelCritical, format, args...)
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if level < l.minimum {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stamp := time.Now().Format("2006/01/02 15:04:05")
	fmt.Fprintf(l.out, "%s %s:\t%s\n", stamp, level, fmt.Sprintf(format, args...))
}
