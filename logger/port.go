package logger

import (
	"fmt"
	"strings"
)

// Port is a set of output destinations. The zero value is the empty set.
type Port uint8

const (
	// ConsolePort writes colored lines to stdout.
	ConsolePort Port = 1 << iota
	// FilePort appends lines to the current log file.
	FilePort
	// EventPort delivers lines to registered subscribers.
	EventPort

	// AllPorts enables every destination.
	AllPorts = ConsolePort | FilePort | EventPort
)

var portNames = []struct {
	port Port
	name string
}{
	{ConsolePort, "console"},
	{FilePort, "file"},
	{EventPort, "event"},
}

// Has reports whether every port in q is enabled in p.
func (p Port) Has(q Port) bool {
	return q != 0 && p&q == q
}

func (p Port) String() string {
	if p&AllPorts == 0 {
		return "none"
	}
	parts := make([]string, 0, len(portNames))
	for _, pn := range portNames {
		if p.Has(pn.port) {
			parts = append(parts, pn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParsePorts parses a list of port names separated by commas, pipes or spaces.
// "none" and the empty string yield the empty set.
func ParsePorts(s string) (Port, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t'
	})
	var ports Port
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "console", "stdout":
			ports |= ConsolePort
		case "file":
			ports |= FilePort
		case "event", "events":
			ports |= EventPort
		case "all":
			ports |= AllPorts
		case "none":
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownPort, f)
		}
	}
	return ports, nil
}
