package installer

import (
	"fmt"

	"nix-config/internal/config"
	"nix-config/internal/logger"
	"nix-config/internal/runner"
)

// ApplyPreferences writes each setting with `defaults write`, in order.
// Every write overwrites the previous value. The first failing write stops the
// run and is returned.
func ApplyPreferences(r runner.Runner, settings []config.PreferenceSetting) error {
	logger.Info("[INFO] Applying system defaults...\n")

	for _, s := range settings {
		args := defaultsWriteArgs(s)
		logger.Debug("[DEBUG] Writing setting %s = %s\n", s.ID(), s.Value)

		if _, err := runner.Check(r, "defaults", args...); err != nil {
			return fmt.Errorf("failed to set default %s.%s: %w", s.Domain, s.Key, err)
		}
		logger.Debug("[DEBUG] Applied setting: %s = %s\n", s.ID(), s.Value)
	}

	logger.Info("[INFO] System defaults applied successfully\n")
	return nil
}

// defaultsWriteArgs builds the arguments for `defaults write`. Untyped
// settings pass the value as is; typed ones add the matching -bool/-int/...
// flag.
func defaultsWriteArgs(s config.PreferenceSetting) []string {
	args := []string{"write", s.Domain, s.Key}
	switch s.Type {
	case "bool":
		args = append(args, "-bool", s.Value)
	case "int":
		args = append(args, "-int", s.Value)
	case "float":
		args = append(args, "-float", s.Value)
	case "string":
		args = append(args, "-string", s.Value)
	default:
		args = append(args, s.Value)
	}
	return args
}
