package logger

import (
	"io"

	"github.com/fatih/color"
)

// colorReset is written after every colored line. fatih/color skips its own
// reset when the process-wide color.NoColor is set, even for colors forced on.
const colorReset = "\x1b[0m"

// consoleWriter renders lines for ConsolePort. Callers hold Logger.mu.
type consoleWriter struct {
	out      io.Writer
	colorize bool
	journal  bool
	warn     *color.Color
	err      *color.Color
}

func newConsoleWriter(out io.Writer) *consoleWriter {
	return &consoleWriter{
		out:  out,
		warn: color.New(color.FgYellow),
		err:  color.New(color.FgRed),
	}
}

// setColorize overrides fatih/color's terminal detection for this writer only.
func (c *consoleWriter) setColorize(on bool) {
	c.colorize = on
	for _, col := range []*color.Color{c.warn, c.err} {
		if on {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
}

func (c *consoleWriter) colorFor(level Level) *color.Color {
	switch level {
	case WarnLevel:
		return c.warn
	case ErrorLevel:
		return c.err
	default:
		return nil
	}
}

func (c *consoleWriter) write(level Level, line string) error {
	if c.journal {
		_, err := io.WriteString(c.out, syslogPrefixForLevel(level)+line+"\n")
		return err
	}
	if err := c.writeColored(level, line); err != nil {
		return err
	}
	_, err := io.WriteString(c.out, "\n")
	return err
}

// writeColored sets the level color for a single write; the reset is deferred
// so the terminal is restored even when the write fails.
func (c *consoleWriter) writeColored(level Level, line string) error {
	if col := c.colorFor(level); col != nil && c.colorize {
		col.SetWriter(c.out)
		defer io.WriteString(c.out, colorReset)
	}
	_, err := io.WriteString(c.out, line)
	return err
}

func syslogPrefixForLevel(level Level) string {
	switch level {
	case InfoLevel:
		return "<6>"
	case WarnLevel:
		return "<4>"
	case ErrorLevel:
		return "<3>"
	default:
		return ""
	}
}
