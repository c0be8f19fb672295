package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-scoped structured logger used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps LOG_LEVEL style names to zerolog levels. debug forces DebugLevel
// regardless of name, matching DEBUG=1 in the environment.
func ParseLevel(name string, debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewNop returns a logger that discards everything.
func NewNop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}
