// Package config provides layered settings for linedit.
//
// Settings are merged from three sources, later ones overriding earlier:
//
//	defaults < config file (TOML or YAML) < LINEDIT_* environment
//
// Values set with Set (command line flags) sit on top and survive reloads.
//
// # Settings
//
//	logging.level            debug, info, warn or error
//	logging.file             log file path used while the terminal is raw
//	input.quit               key that ends the session, e.g. "alt+q"
//	input.tabAsSpaces        spaces inserted for Tab; 0 inserts a tab
//	render.showStatus        draw the buffer inspection line
//	render.tabWidth          display width of a tab stop
//	script.operationLimit    buffer operations allowed per script run
//	script.timeout           wall clock limit per script run
//
// When a file is configured and watching is enabled, edits to it are
// reloaded and handlers registered with OnReload receive the new Settings.
//
// # Sub-packages
//
//   - loader: file and environment loading, map merging
//   - watcher: fsnotify-based change detection for the config file
package config
