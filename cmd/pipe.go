package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/portlog/logger"
)

var (
	pipeLevel string
	pipeCount bool
)

func init() {
	pipeCmd.Flags().StringVarP(&pipeLevel, "level", "l", "info", "level for every line: info, warn or error")
	pipeCmd.Flags().BoolVar(&pipeCount, "count", false, "also enable the event port and report how many lines were delivered")
}

func resetPipeState() {
	pipeLevel = "info"
	pipeCount = false
}

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Write every line read from stdin",
	Long: `Reads stdin until EOF and writes each non-blank line as a log message.

Examples:
  make 2>&1 | portlog --ports console,file pipe --level warn`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(pipeLevel)
		if err != nil {
			return fmt.Errorf("invalid --level: %w", err)
		}
		l, err := newLogger(cmd)
		if err != nil {
			return err
		}

		counter := startCounter(l, pipeCount)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			l.Log(line, level)
		}
		counter.report(cmd)
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return nil
	},
}
