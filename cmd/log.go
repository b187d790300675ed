package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/portlog/logger"
)

var (
	logLevel string
	logCount bool
)

func init() {
	logCmd.Flags().StringVarP(&logLevel, "level", "l", "info", "level of the message: info, warn or error")
	logCmd.Flags().BoolVar(&logCount, "count", false, "also enable the event port and report how many lines were delivered")
}

func resetLogState() {
	logLevel = "info"
	logCount = false
}

var logCmd = &cobra.Command{
	Use:   "log <message...>",
	Short: "Write one message",
	Long: `Writes the arguments, joined by spaces, as a single log line.

Examples:
  portlog log "service started"
  portlog --ports console,file log --level error "database unreachable"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --level: %w", err)
		}
		l, err := newLogger(cmd)
		if err != nil {
			return err
		}

		counter := startCounter(l, logCount)
		l.Log(strings.Join(args, " "), level)
		counter.report(cmd)
		return nil
	},
}

// eventCounter counts lines delivered on the event port.
type eventCounter struct {
	l         *logger.Logger
	id        logger.SubscriptionID
	delivered int
}

// startCounter adds EventPort to l and subscribes a counter when enabled.
func startCounter(l *logger.Logger, enabled bool) *eventCounter {
	c := &eventCounter{l: l}
	if !enabled {
		return c
	}
	l.Configure("", l.Level(), l.Ports()|logger.EventPort)
	c.id = l.Subscribe(func(string) { c.delivered++ })
	return c
}

func (c *eventCounter) report(cmd *cobra.Command) {
	if c.id == 0 {
		return
	}
	c.l.Unsubscribe(c.id)
	fmt.Fprintf(cmd.OutOrStdout(), "delivered %d event(s)\n", c.delivered)
}
