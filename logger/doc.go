// Package logger provides a leveled logger that writes each accepted message
// to any combination of three output ports: console, file and in-process events.
//
// # Line Format
//
// Every port receives the same line:
//
//	[2024-05-01 13:37:00] [WARN] disk almost full
//
// Level tags are INFO, WARN and ERROR. Timestamps use local time.
//
// # Ports
//
//   - ConsolePort writes to stdout; WARN is yellow, ERROR is red when Config.Colorize is set
//   - FilePort appends to the current log path, opening and closing the file per message
//   - EventPort calls every registered Subscriber in registration order
//
// Ports fire in the fixed order Console, File, Event. A failing port never
// stops the others and never surfaces to the caller: file errors are reported
// on stderr as "Error writing to log file: ...", panicking subscribers are
// recovered and reported the same way.
//
// # Usage
//
// Construct a Logger and pass it to the components that need it:
//
//	l := logger.New()
//	l.Configure("/var/log/app.log", logger.WarnLevel, logger.ConsolePort|logger.FilePort)
//	l.Warning("disk almost full")
//
// Or use the process-wide default through the package-level functions:
//
//	logger.Init(logger.ConfigFromEnv())
//	logger.Infof("server started on port %d", 8080)
//
// # Environment
//
// ConfigFromEnv reads LOGGER_FILE, LOGGER_LEVEL, LOGGER_PORTS and LOGGER_COLOR,
// and enables journald priority prefixes when JOURNAL_STREAM is set:
//
//	LOGGER_LEVEL=warn LOGGER_PORTS=console,file ./myapp
package logger
