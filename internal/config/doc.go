// Package config loads dexter's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/dexter/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are blank, use defaults
//
// # Fields
//
//	api_base           = "https://pokeapi.co/api/v2"
//	request_timeout    = "10s"    # per request, Go duration syntax
//	default_generation = 1        # generation shown at startup
//	max_in_flight      = 0        # detail request cap, 0 = unbounded
//	log_file           = "~/.local/state/dexter/dexter.log"  # "" disables
//	log_level          = "info"
//
// Paths beginning with ~ are expanded against the user's home directory.
// Malformed TOML, unparsable durations and negative limits are errors;
// the caller decides whether to abort.
package config
