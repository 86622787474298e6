// Package config loads guestdump's optional TOML settings and resolves the
// hypervisor log location.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/guestdump/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Empty or whitespace-only fields also fall back to defaults
//
// # TOML Format
//
//	color = "always"          # auto, always or never
//	highlight_color = "10"    # any lipgloss color: ANSI index or "#rrggbb"
//
// The color value is validated by the render package, not here.
//
// # Log Location
//
// The log path is not configurable. LogPath always returns
// $HOME/VirtualBox VMs/RustOS/Logs/VBox.log.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
