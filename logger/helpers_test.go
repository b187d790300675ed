package logger

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

var testTime = time.Date(2024, 5, 1, 13, 37, 0, 0, time.Local)

type testOutputs struct {
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	logPath string
}

// newTestLogger returns a Logger with captured console output, a fixed clock
// and a log path inside t.TempDir(). Colors are off.
func newTestLogger(t *testing.T, cfg Config) (*Logger, testOutputs) {
	t.Helper()
	out := testOutputs{
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		logPath: filepath.Join(t.TempDir(), "test.log"),
	}
	if cfg.FilePath == "" {
		cfg.FilePath = out.logPath
	} else {
		out.logPath = cfg.FilePath
	}
	l := New(
		WithStdout(out.stdout),
		WithStderr(out.stderr),
		WithClock(func() time.Time { return testTime }),
		WithConfig(cfg),
	)
	return l, out
}
