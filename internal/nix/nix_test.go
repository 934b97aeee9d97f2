package nix

import (
	"errors"
	"strings"
	"testing"

	"nix-config/internal/runner"
	"nix-config/internal/runner/runnertest"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		run  func(runner.Runner) error
		want string
	}{
		{"build", func(r runner.Runner) error { return Build(r, ".#work") }, "nix run nix-darwin -- build --flake .#work"},
		{"switch", func(r runner.Runner) error { return Switch(r, ".#work") }, "sudo darwin-rebuild switch --flake .#work"},
		{"check", Check, "nix flake check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runnertest.New()
			if err := tt.run(rec); err != nil {
				t.Fatalf("error = %v", err)
			}
			calls := rec.Calls()
			if len(calls) != 1 || calls[0] != tt.want {
				t.Errorf("calls = %v, want [%s]", calls, tt.want)
			}
		})
	}
}

func TestCommands_FailurePropagates(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		run     func(runner.Runner) error
		wantErr string
	}{
		{"build", "nix run", func(r runner.Runner) error { return Build(r, DefaultFlake) }, "build failed"},
		{"switch", "sudo darwin-rebuild", func(r runner.Runner) error { return Switch(r, DefaultFlake) }, "switch failed"},
		{"check", "nix flake check", Check, "flake check failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runnertest.New().On(tt.prefix, 1, "error: attribute 'mbp' missing")

			err := tt.run(rec)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) || !strings.Contains(err.Error(), "attribute 'mbp' missing") {
				t.Errorf("unexpected error: %v", err)
			}
			var cmdErr *runner.CommandError
			if !errors.As(err, &cmdErr) {
				t.Errorf("expected *runner.CommandError in chain, got %T", err)
			}
		})
	}
}
