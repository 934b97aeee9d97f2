package cmd

import (
	"github.com/spf13/cobra"

	"nix-config/internal/nix"
)

// flakePath is the flake reference for build and switch, set via --flake/-f.
var flakePath string

// buildCmd builds the nix-darwin configuration without activating it.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the nix-darwin configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newDriver().Build(flakePath)
	},
}

// switchCmd builds and activates the nix-darwin configuration.
var switchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Build and activate the nix-darwin configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newDriver().Switch(flakePath)
	},
}

// checkCmd validates the flake.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the flake configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newDriver().Check()
	},
}

func init() {
	buildCmd.Flags().StringVarP(&flakePath, "flake", "f", nix.DefaultFlake, "Flake reference to build")
	switchCmd.Flags().StringVarP(&flakePath, "flake", "f", nix.DefaultFlake, "Flake reference to switch to")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(checkCmd)
}
