// Package config loads gratail's TOML configuration.
//
// # Discovery
//
// Load resolves the config file in this order:
//
//  1. the explicit path, when one is given
//  2. ~/.config/gratail/config.toml
//
// A missing file is not an error; Default is returned instead. Fields that
// are absent, empty, or non-positive keep their defaults.
//
// # TOML Format
//
//	log_path = "~/sim/vga_out.gra"
//	display = "tui"            # or "window"
//	batch_budget_ms = 250
//	idle_interval_ms = 10
//	present_interval_ms = 100
//	wait_interval_ms = 100
//	safety_margin = 100        # bytes left unread at the end of a growing log
//	max_line_bytes = 4096
//	log_file = "~/.local/state/gratail/gratail.log"
//	window_scale = 2
//
// Setting log_file to "" disables diagnostic logging. safety_margin accepts
// an explicit 0.
//
// # Path Expansion
//
// log_path and log_file accept ~ and relative paths and are made absolute.
// The built-in default log_path stays relative to the working directory.
package config
