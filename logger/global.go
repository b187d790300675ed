package logger

import "sync"

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Default returns the process-wide Logger, creating it with DefaultConfig on first use.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New()
	}
	return defaultLogger
}

// SetDefault replaces the process-wide Logger. Passing nil makes the next
// Default call create a fresh one.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Init applies config to the default Logger. The whole Config is applied;
// build it from DefaultConfig or ConfigFromEnv to keep the defaults.
func Init(config Config) {
	Default().Apply(config)
}

// InitWithFile initializes the default Logger with a file path override.
func InitWithFile(config Config, filePath string) {
	config.FilePath = filePath
	Init(config)
}

// Configure calls Configure on the default Logger.
func Configure(path string, minLevel Level, ports Port) {
	Default().Configure(path, minLevel, ports)
}

// Log calls Log on the default Logger.
func Log(message string, level Level) {
	Default().Log(message, level)
}

// Info logs message at InfoLevel on the default Logger.
func Info(message string) {
	Default().Info(message)
}

// Warning logs message at WarnLevel on the default Logger.
func Warning(message string) {
	Default().Warning(message)
}

// Error logs message at ErrorLevel on the default Logger.
func Error(message string) {
	Default().Error(message)
}

// Infof logs a formatted informational message on the default Logger.
func Infof(format string, v ...any) {
	Default().Infof(format, v...)
}

// Warningf logs a formatted warning message on the default Logger.
func Warningf(format string, v ...any) {
	Default().Warningf(format, v...)
}

// Errorf logs a formatted error message on the default Logger.
func Errorf(format string, v ...any) {
	Default().Errorf(format, v...)
}

// Infoln logs an informational message joined with fmt.Sprint on the default Logger.
func Infoln(v ...any) {
	Default().Infoln(v...)
}

// Warningln logs a warning message joined with fmt.Sprint on the default Logger.
func Warningln(v ...any) {
	Default().Warningln(v...)
}

// Errorln logs an error message joined with fmt.Sprint on the default Logger.
func Errorln(v ...any) {
	Default().Errorln(v...)
}

// Api calls Api on the default Logger.
func Api(statusCode int, msg string) {
	Default().Api(statusCode, msg)
}

// CurrentLogPath returns the file path of the default Logger.
func CurrentLogPath() string {
	return Default().CurrentLogPath()
}

// SetCurrentLogPath replaces the file path of the default Logger unconditionally.
func SetCurrentLogPath(path string) {
	Default().SetCurrentLogPath(path)
}

// Subscribe registers fn on the default Logger.
func Subscribe(fn Subscriber) SubscriptionID {
	return Default().Subscribe(fn)
}

// Unsubscribe removes a subscriber from the default Logger.
func Unsubscribe(id SubscriptionID) bool {
	return Default().Unsubscribe(id)
}
