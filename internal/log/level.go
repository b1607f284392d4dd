package log

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var slogLevels = [...]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// levelNames maps config spellings to levels. "warning" is accepted for
// .env files written for other tools.
var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// LevelNames lists the spellings ParseLevel accepts.
func LevelNames() []string {
	return []string{"debug", "info", "warn", "warning", "error"}
}

// String returns the slog name of l.
func (l Level) String() string { return l.ToSlogLevel().String() }

// ToSlogLevel converts l to a slog.Level. Out-of-range values log at info.
func (l Level) ToSlogLevel() slog.Level {
	if l < LevelDebug || l > LevelError {
		return slog.LevelInfo
	}
	return slogLevels[l]
}

// ParseLevel parses a config level, ignoring case. An unknown name returns
// LevelInfo and an error.
func ParseLevel(s string) (Level, error) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}
