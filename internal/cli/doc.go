// Package cli defines dexter's command tree.
//
// The root command starts the interactive browser. Three one-shot
// subcommands share its config wiring:
//
//	dexter groups [--generation N]   print a generation grouped by type
//	dexter lookup <name>             exact remote lookup of one creature
//	dexter logs [-n N]               tail dexter's JSON log as a table
//
// Errors are returned to main, which prints "dexter: <err>" and exits 1.
package cli
