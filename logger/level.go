package logger

import (
	"fmt"
	"strings"
)

// Level defines log severity. Higher values are more severe.
type Level int32

const (
	// InfoLevel is for normal operational messages.
	InfoLevel Level = iota
	// WarnLevel is for conditions worth attention that do not stop work.
	WarnLevel
	// ErrorLevel is for failed operations.
	ErrorLevel
)

// AllLevels returns all supported levels in ascending order.
func AllLevels() []Level {
	return []Level{InfoLevel, WarnLevel, ErrorLevel}
}

// String returns the tag written between brackets in every log line.
func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	}
	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
