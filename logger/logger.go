package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Logger filters messages by level and dispatches them to the active ports.
// A Logger is safe for concurrent use. The zero value is not usable; call New.
type Logger struct {
	// mu guards ports, filePath, console and the dispatch section of Log.
	mu       sync.Mutex
	ports    Port
	filePath string
	console  *consoleWriter

	// minLevel is read without mu so filtered messages never contend on the lock.
	minLevel atomic.Int32

	events eventHub
	stderr io.Writer
	now    func() time.Time
}

// Option configures a Logger during New.
type Option func(*Logger)

// WithStdout sets the console destination. Default: os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(l *Logger) {
		l.console.out = w
	}
}

// WithStderr sets where port failures are reported. Default: os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(l *Logger) {
		l.stderr = w
	}
}

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// WithConfig applies cfg the way Apply does: every field replaces the
// current setting, including zero Ports. Start from DefaultConfig or
// ConfigFromEnv to keep the defaults for fields you do not set.
func WithConfig(cfg Config) Option {
	return func(l *Logger) {
		l.applyLocked(cfg)
	}
}

// New returns a Logger writing INFO and above to DefaultLogPath.
func New(opts ...Option) *Logger {
	l := &Logger{
		filePath: DefaultLogPath(),
		console:  newConsoleWriter(os.Stdout),
		stderr:   os.Stderr,
		now:      time.Now,
	}
	l.applyLocked(DefaultConfig())
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the minimum level and the active port set. The file
// path is replaced only when path is non-empty.
func (l *Logger) Configure(path string, minLevel Level, ports Port) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.configureLocked(path, minLevel, ports)
}

// Apply is Configure plus the console settings of cfg, in one critical section.
// Fields are not merged with the current settings: a zero Ports disables
// every port and a false Colorize turns colors off. An empty FilePath keeps
// the current path.
func (l *Logger) Apply(cfg Config) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.applyLocked(cfg)
}

func (l *Logger) configureLocked(path string, minLevel Level, ports Port) {
	l.minLevel.Store(int32(minLevel))
	l.ports = ports & AllPorts
	if path != "" {
		l.filePath = path
	}
}

func (l *Logger) applyLocked(cfg Config) {
	l.configureLocked(cfg.FilePath, cfg.MinLevel, cfg.Ports)
	l.console.setColorize(cfg.Colorize && !cfg.JournalPrefix)
	l.console.journal = cfg.JournalPrefix
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return Level(l.minLevel.Load())
}

// Ports returns the active port set.
func (l *Logger) Ports() Port {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ports
}

// CurrentLogPath returns the file used by the next FilePort write.
func (l *Logger) CurrentLogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filePath
}

// SetCurrentLogPath replaces the file path unconditionally. An empty path
// makes FilePort writes fail with ErrEmptyLogPath until a path is set again.
func (l *Logger) SetCurrentLogPath(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filePath = path
}

// Subscribe registers fn for lines delivered on EventPort.
// fn runs while the dispatch lock is held; see Subscriber.
func (l *Logger) Subscribe(fn Subscriber) SubscriptionID {
	return l.events.subscribe(fn)
}

// Unsubscribe removes a subscriber. It reports whether id was registered.
func (l *Logger) Unsubscribe(id SubscriptionID) bool {
	return l.events.unsubscribe(id)
}

// Log writes message at level to every active port, in the order
// Console, File, Event. Messages below the minimum level are dropped
// before any formatting or locking. Port failures never reach the caller.
func (l *Logger) Log(message string, level Level) {
	if level < Level(l.minLevel.Load()) {
		return
	}
	line := formatLine(l.now(), level, message)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ports.Has(ConsolePort) {
		_ = l.console.write(level, line)
	}
	if l.ports.Has(FilePort) {
		if err := appendLine(l.filePath, line); err != nil {
			fmt.Fprintf(l.stderr, "Error writing to log file: %v\n", err)
		}
	}
	if l.ports.Has(EventPort) {
		l.events.publish(line, l.reportSubscriberPanic)
	}
}

func (l *Logger) reportSubscriberPanic(id SubscriptionID, v any) {
	fmt.Fprintf(l.stderr, "Error in log subscriber %d: %v\n", id, v)
}

// Info logs message at InfoLevel.
func (l *Logger) Info(message string) {
	l.Log(message, InfoLevel)
}

// Warning logs message at WarnLevel.
func (l *Logger) Warning(message string) {
	l.Log(message, WarnLevel)
}

// Error logs message at ErrorLevel.
func (l *Logger) Error(message string) {
	l.Log(message, ErrorLevel)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	if InfoLevel < l.Level() {
		return
	}
	l.Log(fmt.Sprintf(format, v...), InfoLevel)
}

// Warningf logs a warning message formatted with fmt.Sprintf.
func (l *Logger) Warningf(format string, v ...any) {
	if WarnLevel < l.Level() {
		return
	}
	l.Log(fmt.Sprintf(format, v...), WarnLevel)
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	if ErrorLevel < l.Level() {
		return
	}
	l.Log(fmt.Sprintf(format, v...), ErrorLevel)
}

// Infoln logs an informational message by joining arguments with fmt.Sprint.
func (l *Logger) Infoln(v ...any) {
	if InfoLevel < l.Level() {
		return
	}
	l.Log(fmt.Sprint(v...), InfoLevel)
}

// Warningln logs a warning message by joining arguments with fmt.Sprint.
func (l *Logger) Warningln(v ...any) {
	if WarnLevel < l.Level() {
		return
	}
	l.Log(fmt.Sprint(v...), WarnLevel)
}

// Errorln logs an error message by joining arguments with fmt.Sprint.
func (l *Logger) Errorln(v ...any) {
	if ErrorLevel < l.Level() {
		return
	}
	l.Log(fmt.Sprint(v...), ErrorLevel)
}

// Api logs an HTTP API call with the level picked from the status code:
// 5xx -> ERROR, 4xx -> WARN, anything else -> INFO.
//
// Example:
//
//	l.Api(200, "api call successful")
//	l.Api(404, "resource not found")
func (l *Logger) Api(statusCode int, msg string) {
	l.Log(fmt.Sprintf("[%d] %s", statusCode, msg), statusCodeToLevel(statusCode))
}
