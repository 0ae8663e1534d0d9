package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/dexter/internal/config"
	"github.com/five82/dexter/internal/logtail"
)

const defaultLogLines = 50

func newLogsCommand(flags *rootFlags) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the most recent entries from dexter's log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.LogFile == "" {
				return errors.New("logging is disabled (log_file is empty)")
			}

			entries, err := logtail.Read(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "no log entries in %s\n", cfg.LogFile)
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderLogs(entries))
			return err
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", defaultLogLines, "number of lines to show (0 for all)")
	return cmd
}
