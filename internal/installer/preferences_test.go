package installer

import (
	"strings"
	"testing"

	"nix-config/internal/config"
	"nix-config/internal/runner/runnertest"
)

func TestApplyPreferences_Defaults(t *testing.T) {
	rec := runnertest.New()

	if err := ApplyPreferences(rec, config.Default().Settings()); err != nil {
		t.Fatalf("ApplyPreferences() error = %v", err)
	}

	want := []string{
		"defaults write com.apple.dock autohide true",
		"defaults write com.apple.dock tilesize 60",
		"defaults write com.apple.finder AppleShowAllExtensions true",
		"defaults write com.apple.finder AppleShowAllFiles true",
		"defaults write com.apple.loginwindow GuestEnabled false",
		"defaults write NSGlobalDomain com.apple.swipescrolldirection false",
		"defaults write NSGlobalDomain AppleICUForce24HourTime true",
		"defaults write NSGlobalDomain AppleInterfaceStyleSwitchesAutomatically true",
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

func TestApplyPreferences_FailFast(t *testing.T) {
	rec := runnertest.New().On("defaults write com.apple.finder AppleShowAllFiles", 1, "Could not write domain com.apple.finder")

	err := ApplyPreferences(rec, config.Default().Settings())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "com.apple.finder.AppleShowAllFiles") {
		t.Errorf("error should name the setting: %v", err)
	}
	if !strings.Contains(err.Error(), "Could not write domain") {
		t.Errorf("error should carry stderr: %v", err)
	}
	if got := len(rec.Calls()); got != 4 {
		t.Errorf("expected to stop after the 4th write, got %d calls", got)
	}
	if rec.Index("defaults write com.apple.loginwindow") != -1 {
		t.Error("settings after the failure should not be written")
	}
}

func TestApplyPreferences_Empty(t *testing.T) {
	rec := runnertest.New()
	if err := ApplyPreferences(rec, nil); err != nil {
		t.Fatalf("ApplyPreferences(nil) error = %v", err)
	}
	if len(rec.Calls()) != 0 {
		t.Errorf("expected no calls, got %v", rec.Calls())
	}
}

func TestDefaultsWriteArgs(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{"", "write com.apple.dock tilesize 48"},
		{"bool", "write com.apple.dock tilesize -bool 48"},
		{"int", "write com.apple.dock tilesize -int 48"},
		{"float", "write com.apple.dock tilesize -float 48"},
		{"string", "write com.apple.dock tilesize -string 48"},
	}
	for _, tt := range tests {
		t.Run("type="+tt.typ, func(t *testing.T) {
			s := config.PreferenceSetting{Domain: config.DockDomain, Key: "tilesize", Value: "48", Type: tt.typ}
			if got := strings.Join(defaultsWriteArgs(s), " "); got != tt.want {
				t.Errorf("args = %q, want %q", got, tt.want)
			}
		})
	}
}
