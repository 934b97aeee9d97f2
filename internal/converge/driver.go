// Package converge sequences the provisioning steps into the top-level
// operations exposed by the CLI.
//
// Within a list (packages, preferences) the first hard error aborts the rest;
// cleanup and activation directives only warn. A failed operation is not
// resumed: running it again repeats every step, which is safe because each
// step is idempotent or best effort.
package converge

import (
	"nix-config/internal/config"
	"nix-config/internal/installer"
	"nix-config/internal/logger"
	"nix-config/internal/nix"
	"nix-config/internal/runner"
)

// Driver holds no state beyond the runner it hands to each step.
type Driver struct {
	runner runner.Runner
	brew   *installer.Homebrew
}

// New creates a Driver. Options are passed to the Homebrew installer.
func New(r runner.Runner, opts ...installer.Option) *Driver {
	return &Driver{
		runner: r,
		brew:   installer.NewHomebrew(r, opts...),
	}
}

// Apply converges the machine to ds: preferences, then activation
// directives, then brews and casks.
func (d *Driver) Apply(ds config.DesiredState) error {
	if err := installer.ApplyPreferences(d.runner, ds.Settings()); err != nil {
		return err
	}

	installer.Activate(d.runner, ds.Activation)

	if err := d.brew.InstallPackages(ds.Brews, ds.Casks); err != nil {
		return err
	}

	logger.Info("[INFO] Configuration applied successfully\n")
	return nil
}

// Update checks the flake, updates and upgrades Homebrew, then cleans up.
// Cleanup problems never fail the update.
func (d *Driver) Update() error {
	if err := nix.Check(d.runner); err != nil {
		return err
	}
	if err := d.brew.Update(); err != nil {
		return err
	}
	d.brew.Cleanup()

	logger.Info("[INFO] System updated successfully\n")
	return nil
}

// Build builds the nix-darwin configuration. An empty flake means nix.DefaultFlake.
func (d *Driver) Build(flake string) error {
	return nix.Build(d.runner, flakeOrDefault(flake))
}

// Switch activates the nix-darwin configuration. An empty flake means nix.DefaultFlake.
func (d *Driver) Switch(flake string) error {
	return nix.Switch(d.runner, flakeOrDefault(flake))
}

// Check validates the flake.
func (d *Driver) Check() error {
	return nix.Check(d.runner)
}

func flakeOrDefault(flake string) string {
	if flake == "" {
		return nix.DefaultFlake
	}
	return flake
}
