package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nix-config/internal/nix"
	"nix-config/internal/runner"
	"nix-config/internal/runner/runnertest"
)

// executeCommand runs the root command against rec and returns its output.
// Flag variables are package globals, so they are reset before every run.
func executeCommand(t *testing.T, rec *runnertest.Recorder, args ...string) (string, error) {
	t.Helper()

	oldRunner := newRunner
	newRunner = func() runner.Runner { return rec }
	t.Cleanup(func() { newRunner = oldRunner })

	flakePath = nix.DefaultFlake
	configFile = ""
	debug = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default flake", []string{"build"}, "nix run nix-darwin -- build --flake .#mbp"},
		{"long flag", []string{"build", "--flake", ".#studio"}, "nix run nix-darwin -- build --flake .#studio"},
		{"short flag", []string{"build", "-f", ".#air"}, "nix run nix-darwin -- build --flake .#air"},
		{"switch", []string{"switch"}, "sudo darwin-rebuild switch --flake .#mbp"},
		{"switch flag", []string{"switch", "--flake", "/etc/nix-darwin#mbp"}, "sudo darwin-rebuild switch --flake /etc/nix-darwin#mbp"},
		{"check", []string{"check"}, "nix flake check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runnertest.New()
			if _, err := executeCommand(t, rec, tt.args...); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			calls := rec.Calls()
			if len(calls) != 1 || calls[0] != tt.want {
				t.Errorf("calls = %v, want [%s]", calls, tt.want)
			}
		})
	}
}

func TestBuildCommand_Failure(t *testing.T) {
	rec := runnertest.New().On("nix run", 1, "error: flake 'path:.' does not provide attribute")

	_, err := executeCommand(t, rec, "build")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "does not provide attribute") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestApplyCommand_Defaults(t *testing.T) {
	rec := runnertest.New()

	if _, err := executeCommand(t, rec, "apply"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if rec.Index("defaults write com.apple.dock autohide true") != 0 {
		t.Errorf("expected the first call to write dock autohide, got %v", rec.Calls())
	}
	if rec.Index("brew install --cask visual-studio-code") == -1 {
		t.Error("expected default casks to be installed")
	}
}

func TestApplyCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.yaml")
	doc := `
activation:
  username: alice
brews: [ripgrep]
casks: [zed]
preferences:
  - area: dock
    settings:
      - {domain: com.apple.dock, key: tilesize, value: "36", type: int}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	rec := runnertest.New()
	if _, err := executeCommand(t, rec, "apply", "--config-file", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []string{
		"defaults write com.apple.dock tilesize -int 36",
		"sudo -u alice defaultbrowser browser",
		"rustup default stable",
		"brew install ripgrep",
		"brew install --cask zed",
	}
	calls := rec.Calls()
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestApplyCommand_BadConfigFile(t *testing.T) {
	rec := runnertest.New()

	_, err := executeCommand(t, rec, "apply", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rec.Calls()) != 0 {
		t.Errorf("nothing should run when the config cannot be loaded, got %v", rec.Calls())
	}
}

func TestApplyCommand_PreferenceFailure(t *testing.T) {
	rec := runnertest.New().On("defaults write", 1, "Could not write domain")

	_, err := executeCommand(t, rec, "apply")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rec.CallsWithPrefix("brew")) != 0 {
		t.Error("brew must not run after a preference failure")
	}
}

func TestUpdateCommand(t *testing.T) {
	rec := runnertest.New().On("brew cleanup", 1, "Error: Permission denied")

	if _, err := executeCommand(t, rec, "update"); err != nil {
		t.Fatalf("cleanup failure must not fail update: %v", err)
	}
	if got := len(rec.Calls()); got != 4 {
		t.Errorf("expected 4 calls, got %v", rec.Calls())
	}
}

func TestShowCommand(t *testing.T) {
	rec := runnertest.New()

	out, err := executeCommand(t, rec, "show")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Activation", "filip", "neovim", "visual-studio-code", "com.apple.dock", "GuestEnabled", "Slack.app"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q", want)
		}
	}
	if len(rec.Calls()) != 0 {
		t.Errorf("show must not run commands, got %v", rec.Calls())
	}
}

func TestUnknownArgs(t *testing.T) {
	if _, err := executeCommand(t, runnertest.New(), "check", "extra"); err == nil {
		t.Error("expected error for unexpected positional argument")
	}
}
