// Package app provides the composition root for dexter.
//
// # Overview
//
// This package wires configuration, logging, the API client, the catalog
// loader, and the view controller, then hands the controller to the UI.
// The one-shot CLI commands reuse the same wiring through Bootstrap so they
// read the same config file and log to the same place as the TUI.
//
// # Startup
//
//  1. Load ~/.config/dexter/config.toml (missing file means defaults)
//  2. Resolve the starting generation (flag, then default_generation)
//  3. Open the zap file logger (empty log_file disables it)
//  4. Build the pokeapi client and the catalog loader
//  5. Load prefs; a --theme flag overrides the saved theme for this session
//  6. Create the controller in Loading(start) and run the Bubble Tea program
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> Bootstrap()            config, logger, client, loader
//	       ├─────> state.NewController()  Loading(start)
//	       └─────> ui.Run()               blocks until quit
//
//	Inside the UI:
//	  key press ──> controller transition ──> tea.Cmd (load / lookup)
//	                                            │
//	  render <── Snapshot() <── loadDoneMsg ────┘
//
// # Error Handling
//
// Fatal errors (returned from Run or Bootstrap):
//   - unreadable or invalid config file
//   - generation number outside 1-9
//   - log file that cannot be created
//   - malformed api_base
//
// Catalog failures are not fatal: they put the controller in its Error
// phase and the user can retry or pick another generation.
package app
