// Package cmd implements the portlog command-line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/mordilloSan/portlog/internal/env"
	"github.com/mordilloSan/portlog/logger"
)

var (
	rootFile     string
	rootMinLevel string
	rootPorts    string
	rootColor    string
	rootEnvFiles []string

	rootCmd = &cobra.Command{
		Use:   "portlog",
		Short: "Write leveled log lines to the console, a file, or both",
		Long: `portlog writes timestamped, leveled log lines to any combination of
the console, an append-only log file and in-process event subscribers.

Configuration is read from LOGGER_FILE, LOGGER_LEVEL, LOGGER_PORTS and
LOGGER_COLOR (optionally loaded from --env-file), and flags override it.

Examples:
  # Append a warning to the default log file beside the executable
  portlog log --level warn "disk almost full"

  # Log to the console and a custom file, dropping INFO
  portlog --ports console,file --file ./app.log --min-level warn log -l error "boom"

  # Log every line read from stdin
  tail -f build.out | portlog --ports console pipe

  # Show where file output goes
  portlog path`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootFile, "file", "f", "", "log file path (default: log.txt beside the executable)")
	flags.StringVar(&rootMinLevel, "min-level", "info", "minimum level to write: info, warn or error")
	flags.StringVarP(&rootPorts, "ports", "p", "file", "output ports: console, file, event, all or none")
	flags.StringVar(&rootColor, "color", "auto", "console colors: auto, always or never")
	flags.StringSliceVar(&rootEnvFiles, "env-file", nil, "dotenv file to load before reading LOGGER_* variables (repeatable)")

	rootCmd.AddCommand(logCmd, pipeCmd, pathCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetState resets all command globals and flag state for testing.
func ResetState() {
	rootFile = ""
	rootMinLevel = "info"
	rootPorts = "file"
	rootColor = "auto"
	rootEnvFiles = nil
	resetLogState()
	resetPipeState()
	unchange := func(flag *pflag.Flag) { flag.Changed = false }
	rootCmd.PersistentFlags().VisitAll(unchange)
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(unchange)
	}
}

// newLogger builds a Logger from env files, the environment and any flags the user set.
func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	if err := env.Load(rootEnvFiles...); err != nil {
		return nil, err
	}
	cfg := logger.ConfigFromEnv()

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.FilePath = rootFile
	}
	if flags.Changed("min-level") {
		level, err := logger.ParseLevel(rootMinLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid --min-level: %w", err)
		}
		cfg.MinLevel = level
	}
	if flags.Changed("ports") {
		ports, err := logger.ParsePorts(rootPorts)
		if err != nil {
			return nil, fmt.Errorf("invalid --ports: %w", err)
		}
		cfg.Ports = ports
	}

	colorize, err := resolveColor(rootColor, cfg.Colorize, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	cfg.Colorize = colorize

	return logger.New(
		logger.WithStdout(cmd.OutOrStdout()),
		logger.WithStderr(cmd.ErrOrStderr()),
		logger.WithConfig(cfg),
	), nil
}

// resolveColor maps --color to a decision. "auto" keeps the environment's
// preference but only when out is a terminal.
func resolveColor(mode string, preferred bool, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		return preferred && ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color %q: use auto, always or never", mode)
	}
}
