package logger

import (
	"github.com/fatih/color"

	"github.com/mordilloSan/portlog/internal/env"
)

// Config defines options for Init and Logger.Apply.
// A Config is applied as a whole, so the zero value disables every port.
// The Default lines below are the values DefaultConfig returns; start from
// DefaultConfig or ConfigFromEnv and change only the fields you need:
//
//	cfg := logger.DefaultConfig()
//	cfg.FilePath = "app.log"
//	logger.Init(cfg)
type Config struct {
	// FilePath is the log file used by FilePort; empty keeps the current path.
	// Default: "" (the path beside the running executable)
	FilePath string
	// MinLevel drops every message below it.
	// Default: InfoLevel
	MinLevel Level
	// Ports selects the active destinations. Apply replaces the set, it does not add to it;
	// the zero value means no ports.
	// Default: FilePort
	Ports Port
	// Colorize enables ANSI colors for WARN and ERROR console lines.
	// Default: true when stdout is a color-capable terminal and NO_COLOR is unset
	Colorize bool
	// JournalPrefix prepends syslog priority prefixes to console lines and disables colors.
	// Default: false
	JournalPrefix bool
}

// DefaultConfig returns the configuration a new Logger starts with.
func DefaultConfig() Config {
	return Config{
		MinLevel: InfoLevel,
		Ports:    FilePort,
		Colorize: !color.NoColor,
	}
}

// ConfigFromEnv builds a Config from LOGGER_FILE, LOGGER_LEVEL, LOGGER_PORTS,
// LOGGER_COLOR and JOURNAL_STREAM. Unset or invalid values keep their defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.FilePath = env.GetString("LOGGER_FILE", "")
	if level, err := ParseLevel(env.GetString("LOGGER_LEVEL", cfg.MinLevel.String())); err == nil {
		cfg.MinLevel = level
	}
	if ports, err := ParsePorts(env.GetString("LOGGER_PORTS", cfg.Ports.String())); err == nil {
		cfg.Ports = ports
	}
	cfg.Colorize = env.GetBool("LOGGER_COLOR", cfg.Colorize)
	cfg.JournalPrefix = env.IsSet("JOURNAL_STREAM")
	return cfg
}
