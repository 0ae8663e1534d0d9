package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/dexter/internal/app"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	prefsPath  string
	generation int
	theme      string
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		Generation: f.generation,
		ThemeName:  f.theme,
	}
}

// NewRootCommand builds the dexter command tree. Running it without a
// subcommand starts the TUI.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "dexter",
		Short: "Browse the creature catalog from the terminal",
		Long: `dexter loads one generation of the PokeAPI catalog at a time, groups it
by type, and lets you search and inspect entries.

Run without a subcommand to start the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/dexter/config.toml)")
	pf.IntVarP(&flags.generation, "generation", "g", 0, "generation to load, 1-9 (default from config)")

	root.Flags().StringVar(&flags.prefsPath, "prefs", "", "prefs file (default ~/.config/dexter/prefs.toml)")
	root.Flags().StringVar(&flags.theme, "theme", "", "theme for this session: Pokedex, Nightfox, Kanagawa")

	root.AddCommand(
		newGroupsCommand(flags),
		newLookupCommand(flags),
		newLogsCommand(flags),
	)
	return root
}
