package logger

import (
	"log"
	"strings"

	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

// StdLogger is a simple leveled logger on top of the standard log package.
type StdLogger struct {
	min level
}

// NewStdLogger creates a new StdLogger. level is one of debug, info, warn, error; anything else means info.
func NewStdLogger(lvl string) usecasecontract.IAppLogger {
	return &StdLogger{min: parseLevel(lvl)}
}

func parseLevel(lvl string) level {
	switch strings.ToLower(lvl) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Debugf logs a debug message.
func (l *StdLogger) Debugf(format string, args ...interface{}) {
	if l.min <= levelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Infof logs an info message.
func (l *StdLogger) Infof(format string, args ...interface{}) {
	if l.min <= levelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

// Warnf logs a warning message.
func (l *StdLogger) Warnf(format string, args ...interface{}) {
	if l.min <= levelWarn {
		log.Printf("[WARN] "+format, args...)
	}
}

// Errorf logs an error message.
func (l *StdLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *StdLogger) Fatalf(format string, args ...interface{}) {
	log.Fatalf("[FATAL] "+format, args...)
}
