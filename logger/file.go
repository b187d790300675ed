package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultLogFileName = "log.txt"

// DefaultLogPath returns log.txt beside the running executable, falling back
// to the working directory and then to a bare relative name.
func DefaultLogPath() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), defaultLogFileName)
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, defaultLogFileName)
	}
	return defaultLogFileName
}

// appendLine opens path for append, writes one line and closes it again.
// The parent directory is created when missing.
func appendLine(path, line string) error {
	if path == "" {
		return ErrEmptyLogPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	_, werr := f.WriteString(strings.ToValidUTF8(line, "�") + lineEnding)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("write log file %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("close log file %s: %w", path, cerr)
	}
	return nil
}
