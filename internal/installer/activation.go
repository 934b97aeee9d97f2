package installer

import (
	"strings"

	"nix-config/internal/config"
	"nix-config/internal/logger"
	"nix-config/internal/runner"
)

// directive is one post-install convenience step.
type directive struct {
	name    string
	program string
	args    []string
	missing string // non-empty when a required value is unset
}

func activationDirectives(a config.Activation) []directive {
	browser := directive{
		name:    "set default browser",
		program: "sudo",
		args:    []string{"-u", a.Username, "defaultbrowser", a.DefaultBrowser},
	}
	switch {
	case a.Username == "":
		browser.missing = "username"
	case a.DefaultBrowser == "":
		browser.missing = "default browser"
	}

	toolchain := directive{
		name:    "set rustup default",
		program: "rustup",
		args:    []string{"default", a.Toolchain},
	}
	if a.Toolchain == "" {
		toolchain.missing = "toolchain"
	}

	return []directive{browser, toolchain}
}

// Activate runs the activation directives for the configured user.
// They are conveniences: every failure is logged as a warning and the
// remaining directives still run.
func Activate(r runner.Runner, a config.Activation) {
	logger.Info("[INFO] Setting up activation scripts...\n")

	for _, d := range activationDirectives(a) {
		if d.missing != "" {
			logger.Warn("[WARN] Skipping %s: no %s configured\n", d.name, d.missing)
			continue
		}

		res, err := r.Run(d.program, d.args...)
		switch {
		case err != nil:
			logger.Warn("[WARN] Failed to %s: %v\n", d.name, err)
		case !res.Success():
			logger.Warn("[WARN] Failed to %s: %s\n", d.name, strings.TrimSpace(res.Stderr))
		default:
			logger.Debug("[DEBUG] %s: done\n", d.name)
		}
	}

	logger.Info("[INFO] Activation scripts completed\n")
}
