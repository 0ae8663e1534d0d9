package cli

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/five82/dexter/internal/app"
	"github.com/five82/dexter/internal/catalog"
)

func newGroupsCommand(flags *rootFlags) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Load a generation and print its entries grouped by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.Bootstrap(flags.options())
			if err != nil {
				return err
			}
			defer svc.Close()

			loader := svc.Loader
			var bar *progressbar.ProgressBar
			if !quiet {
				bar = newLoadBar(cmd.ErrOrStderr(), svc.Generation)
				loader = loader.With(catalog.WithProgress(func(done, _ int) {
					_ = bar.Set(done)
				}))
			}

			cat, err := loader.Load(cmd.Context(), svc.Generation)
			if bar != nil {
				_ = bar.Finish()
			}
			if err != nil {
				return fmt.Errorf("load %s: %w", svc.Generation, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderGroups(cat))
			return err
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the download progress bar")
	return cmd
}

func newLoadBar(w io.Writer, gen catalog.Generation) *progressbar.ProgressBar {
	return progressbar.NewOptions(gen.Count(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(fmt.Sprintf("Fetching Gen %s", gen.Roman())),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
