// Package nix wraps the declarative package manager commands: building and
// switching the nix-darwin configuration and checking the flake.
// Failures are returned as they come, with the command's stderr.
package nix

import (
	"fmt"

	"nix-config/internal/logger"
	"nix-config/internal/runner"
)

// DefaultFlake is the flake reference used when none is given.
const DefaultFlake = ".#mbp"

// Build builds the nix-darwin configuration for flake without activating it.
func Build(r runner.Runner, flake string) error {
	logger.Info("[INFO] Building configuration for flake: %s\n", flake)

	if _, err := runner.Check(r, "nix", "run", "nix-darwin", "--", "build", "--flake", flake); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	logger.Info("[INFO] Build completed successfully\n")
	return nil
}

// Switch builds and activates the nix-darwin configuration for flake.
// darwin-rebuild needs root, so it runs through sudo.
func Switch(r runner.Runner, flake string) error {
	logger.Info("[INFO] Switching to configuration for flake: %s\n", flake)

	if _, err := runner.Check(r, "sudo", "darwin-rebuild", "switch", "--flake", flake); err != nil {
		return fmt.Errorf("switch failed: %w", err)
	}

	logger.Info("[INFO] Switch completed successfully\n")
	return nil
}

// Check evaluates the flake in the working directory.
func Check(r runner.Runner) error {
	logger.Info("[INFO] Checking flake configuration...\n")

	if _, err := runner.Check(r, "nix", "flake", "check"); err != nil {
		return fmt.Errorf("flake check failed: %w", err)
	}

	logger.Info("[INFO] Flake check passed\n")
	return nil
}
