package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/dexter/internal/app"
	"github.com/five82/dexter/internal/catalog"
)

func newLookupCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look a creature up by exact name",
		Long: `Look a creature up by exact name on the remote service. The name is
matched case-insensitively and need not belong to the selected generation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Bootstrap(flags.options())
			if err != nil {
				return err
			}
			defer svc.Close()

			rec, err := svc.Loader.Lookup(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, catalog.ErrLookupNotFound) {
					return fmt.Errorf("no creature named %q", strings.TrimSpace(args[0]))
				}
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderRecord(rec))
			return err
		},
	}
}
