package main

import (
	"nix-config/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// nix-config converges a personal macOS machine to a declared state by driving
// three external systems:
//   - nix / nix-darwin for the declarative system configuration (build, switch, check)
//   - Homebrew for formulae and casks not managed by nix
//   - the macOS `defaults` store for Dock, Finder, login window and global preferences
//
// The desired state is a built-in table that a YAML or JSONC document passed with
// --config-file can override.
//
// Error handling strategy:
//   - Preference writes and package installs stop at the first hard failure and the
//     command exits non-zero with the failing command's stderr
//   - A package brew reports as "already installed" counts as installed
//   - Homebrew cleanup and activation steps (default browser, rustup toolchain) only warn
func main() {
	cmd.Execute()
}
