package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nix-config/internal/converge"
	"nix-config/internal/logger"
	"nix-config/internal/runner"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// newRunner builds the process runner used by every subcommand.
// Tests swap it for a recorder.
var newRunner = func() runner.Runner { return runner.NewExec() }

// newDriver wires the convergence driver to the current runner.
func newDriver() *converge.Driver {
	return converge.New(newRunner())
}

// rootCmd is the base command for the CLI tool `nix-config`.
var rootCmd = &cobra.Command{
	Use:   "nix-config",
	Short: "Nix, Homebrew and macOS defaults provisioning",
	Long: `nix-config converges a macOS machine to a declared state.

It builds and switches the nix-darwin flake, writes macOS defaults,
runs activation steps and installs Homebrew formulae and casks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the selected subcommand. A hard error is printed to stderr and
// the process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprintf("error: %v", err))
		os.Exit(1)
	}
}
