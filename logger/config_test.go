package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, InfoLevel, cfg.MinLevel)
	assert.Equal(t, FilePort, cfg.Ports)
	assert.Empty(t, cfg.FilePath)
	assert.False(t, cfg.JournalPrefix)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOGGER_FILE", "/tmp/portlog/app.log")
	t.Setenv("LOGGER_LEVEL", "warning")
	t.Setenv("LOGGER_PORTS", "console,event")
	t.Setenv("LOGGER_COLOR", "false")
	t.Setenv("JOURNAL_STREAM", "8:1234")

	cfg := ConfigFromEnv()

	assert.Equal(t, "/tmp/portlog/app.log", cfg.FilePath)
	assert.Equal(t, WarnLevel, cfg.MinLevel)
	assert.Equal(t, ConsolePort|EventPort, cfg.Ports)
	assert.False(t, cfg.Colorize)
	assert.True(t, cfg.JournalPrefix)
}

func TestConfigFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOGGER_FILE", "")
	t.Setenv("LOGGER_LEVEL", "chatty")
	t.Setenv("LOGGER_PORTS", "console,carrier-pigeon")
	t.Setenv("JOURNAL_STREAM", "")

	cfg := ConfigFromEnv()

	assert.Empty(t, cfg.FilePath)
	assert.Equal(t, InfoLevel, cfg.MinLevel)
	assert.Equal(t, FilePort, cfg.Ports)
	assert.False(t, cfg.JournalPrefix)
}

func TestConfigFromEnv_NoPorts(t *testing.T) {
	t.Setenv("LOGGER_PORTS", "none")

	assert.Equal(t, Port(0), ConfigFromEnv().Ports)
}

func TestApply_EmptyPathKeepsCurrent(t *testing.T) {
	l, out := newTestLogger(t, Config{Ports: FilePort})

	l.Apply(Config{MinLevel: ErrorLevel, Ports: ConsolePort})

	assert.Equal(t, out.logPath, l.CurrentLogPath())
	assert.Equal(t, ErrorLevel, l.Level())
	assert.Equal(t, ConsolePort, l.Ports())
}
