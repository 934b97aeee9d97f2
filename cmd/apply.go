package cmd

import (
	"github.com/spf13/cobra"

	"nix-config/internal/config"
)

// configFile holds the optional desired-state document for apply and show.
// It's passed via the `--config-file` or `-c` flag; empty means the built-in table.
var configFile string

// applyCmd converges preferences, activation steps and Homebrew packages.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply macOS defaults, activation steps and Homebrew packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := config.Resolve(configFile)
		if err != nil {
			return err
		}
		return newDriver().Apply(ds)
	},
}

// updateCmd checks the flake, then updates, upgrades and cleans up Homebrew.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check the flake and update Homebrew packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newDriver().Update()
	},
}

func init() {
	applyCmd.Flags().StringVarP(&configFile, "config-file", "c", "", "Desired-state document (.yaml, .yml, .json, .jsonc)")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(updateCmd)
}
