package logger

import (
	"fmt"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// formatLine renders "[YYYY-MM-DD HH:MM:SS] [LEVEL] message" in local time.
func formatLine(t time.Time, level Level, msg string) string {
	return fmt.Sprintf("[%s] [%s] %s", t.Local().Format(timestampLayout), level, msg)
}

// statusCodeToLevel maps HTTP status codes to log levels.
// 1xx, 2xx, 3xx -> INFO, 4xx -> WARN, 5xx -> ERROR
func statusCodeToLevel(code int) Level {
	switch {
	case code >= 500:
		return ErrorLevel
	case code >= 400:
		return WarnLevel
	default:
		return InfoLevel
	}
}
