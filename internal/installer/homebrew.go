package installer

import (
	"fmt"
	"strings"

	"nix-config/internal/config"
	"nix-config/internal/logger"
	"nix-config/internal/runner"
)

// Homebrew drives the brew CLI: formula and cask installs, update/upgrade and cleanup.
type Homebrew struct {
	runner           runner.Runner
	binary           string
	alreadyInstalled Classifier
}

// Option configures a Homebrew installer.
type Option func(*Homebrew)

// WithClassifier replaces the "already installed" detection rule.
func WithClassifier(c Classifier) Option {
	return func(h *Homebrew) { h.alreadyInstalled = c }
}

// WithBinary sets the brew executable. Defaults to "brew" (found via PATH).
func WithBinary(path string) Option {
	return func(h *Homebrew) { h.binary = path }
}

// NewHomebrew creates a Homebrew installer that runs brew through r.
func NewHomebrew(r runner.Runner, opts ...Option) *Homebrew {
	h := &Homebrew{
		runner:           r,
		binary:           "brew",
		alreadyInstalled: AlreadyInstalled,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InstallPackages installs every brew, then every cask.
// A package that is already installed counts as installed. Any other failure
// stops the remaining installs and is returned.
func (h *Homebrew) InstallPackages(brews []config.PackageSpec, casks []string) error {
	logger.Info("[INFO] Installing Homebrew packages...\n")

	if len(brews) > 0 {
		logger.Info("[INFO] Installing %d brew packages...\n", len(brews))
		for _, brew := range brews {
			if err := h.install("brew", brew.Ref()); err != nil {
				return err
			}
		}
	}

	if len(casks) > 0 {
		logger.Info("[INFO] Installing %d cask packages...\n", len(casks))
		for _, cask := range casks {
			if err := h.install("cask", cask, "--cask"); err != nil {
				return err
			}
		}
	}

	logger.Info("[INFO] Homebrew packages installed successfully\n")
	return nil
}

// install runs `brew install [flags...] <name>` and classifies the outcome.
func (h *Homebrew) install(kind, name string, flags ...string) error {
	args := append([]string{"install"}, flags...)
	args = append(args, name)

	res, err := h.runner.Run(h.binary, args...)
	if err != nil {
		return fmt.Errorf("failed to install %s %s: %w", kind, name, err)
	}
	if res.Success() {
		logger.Debug("[DEBUG] Installed %s %s\n", kind, name)
		return nil
	}
	if h.alreadyInstalled(res.Stderr) {
		logger.Debug("[DEBUG] %s %s is already installed\n", kind, name)
		return nil
	}

	// The classifier did not recognise this failure; keep the raw output visible.
	logger.Error("[ERROR] brew install %s exited with status %d, stderr:\n%s\n", name, res.ExitCode, res.Stderr)
	return fmt.Errorf("failed to install %s %s: %w", kind, name, &runner.CommandError{Result: res})
}

// Update refreshes the formula index and upgrades everything installed.
// Both steps are required; the first failure is returned.
func (h *Homebrew) Update() error {
	logger.Info("[INFO] Updating Homebrew...\n")

	if _, err := runner.Check(h.runner, h.binary, "update"); err != nil {
		return fmt.Errorf("failed to update Homebrew: %w", err)
	}
	if _, err := runner.Check(h.runner, h.binary, "upgrade"); err != nil {
		return fmt.Errorf("failed to upgrade Homebrew packages: %w", err)
	}

	logger.Info("[INFO] Homebrew updated successfully\n")
	return nil
}

// Cleanup removes stale downloads and old versions. It is best effort: a
// failure is logged as a warning and never returned.
func (h *Homebrew) Cleanup() {
	logger.Info("[INFO] Cleaning up Homebrew...\n")

	res, err := h.runner.Run(h.binary, "cleanup")
	switch {
	case err != nil:
		logger.Warn("[WARN] Homebrew cleanup failed: %v\n", err)
	case !res.Success():
		logger.Warn("[WARN] Homebrew cleanup failed: %s\n", strings.TrimSpace(res.Stderr))
	default:
		logger.Info("[INFO] Homebrew cleanup completed\n")
	}
}
