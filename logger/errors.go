package logger

import "errors"

// Parse errors are returned by ParseLevel and ParsePorts.
var (
	// ErrUnknownLevel indicates a level name that does not map to a Level.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnknownPort indicates a port name that does not map to a Port.
	ErrUnknownPort = errors.New("unknown output port")
)

// Write errors are reported on the diagnostic stream and never returned to callers of Log.
var (
	// ErrEmptyLogPath indicates the file port fired while the log path was cleared.
	ErrEmptyLogPath = errors.New("log file path is empty")
)
