package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the log file path",
	Long: `Prints the file that the file port appends to, after applying
--env-file, LOGGER_FILE and --file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), l.CurrentLogPath())
		return nil
	},
}
