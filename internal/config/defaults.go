package config

// Preference domains written by the default table.
const (
	DockDomain        = "com.apple.dock"
	FinderDomain      = "com.apple.finder"
	LoginWindowDomain = "com.apple.loginwindow"
	GlobalDomain      = "NSGlobalDomain"
)

// Default returns the built-in desired state of the machine.
// Every call builds a fresh value, so callers never share slices.
func Default() DesiredState {
	return DesiredState{
		Activation: Activation{
			Username:       "filip",
			DefaultBrowser: "browser",
			HomeDirectory:  "/Users/filip",
			Toolchain:      "stable",
		},
		SystemPackages: []PackageSpec{
			Pkg("neovim"), Pkg("git"), Pkg("gh"), Pkg("pre-commit"), Pkg("nixd"),
			Pkg("nixfmt-rfc-style"), Pkg("cmake"), Pkg("rustup"), Pkg("ruby"), Pkg("awscli2"),
			Pkg("google-cloud-sdk"), Pkg("turso-cli"), Pkg("cloudflared"), Pkg("atlas"), Pkg("golangci-lint"),
			Pkg("python314"), Pkg("pipx"), Pkg("bun"), Pkg("coreutils"), Pkg("wget"),
			Pkg("rclone"), Pkg("p7zip"), Pkg("dust"), Pkg("bottom"), Pkg("defaultbrowser"),
			Pkg("zoxide"), Pkg("bat"), Pkg("eza"), Pkg("jq"), Pkg("yq"),
			Pkg("pandoc"), Pkg("pv"), Pkg("ffmpeg"), Pkg("imagemagick"), Pkg("yt-dlp"),
			Pkg("gnupg"), Pkg("knot-dns"), Pkg("nmap"), Pkg("fastfetch"), Pkg("lolcat"),
			Pkg("git-credential-manager"), Pkg("audacity"), Pkg("raycast"), Pkg("qbittorrent"), Pkg("monitorcontrol"),
			Pkg("wireshark-qt"),
		},
		Brews: []PackageSpec{
			Pkg("bettercap"), Pkg("gnupg"), Pkg("go"), Pkg("nvm"), Pkg("pnpm"),
			Pkg("handbrake"), Pkg("paperjam"), Pkg("gnu-sed"),
		},
		Casks: []string{
			"figma", "loom", "ukelele", "amie", "orbstack", "linear-linear",
			"shottr", "tailscale", "stats", "karabiner-elements", "vlc", "rustdesk",
			"handbrake", "1password", "blender", "thunderbird", "zotero", "github",
			"jetbrains-toolbox", "adobe-creative-cloud", "microsoft-openjdk@21", "swiftdefaultappsprefpane",
			"meetingbar", "lunar-client", "whisky", "steam", "zed", "visual-studio-code",
			"vscodium", "cursor", "utm", "signal", "microsoft-powerpoint", "discord",
			"slack", "parsec", "obs", "obsidian", "ollama", "veracrypt",
			"warp", "tor-browser", "arc", "librewolf", "firefox@developer-edition", "eloston-chromium",
			"zen",
		},
		// Applied in this order: dock, finder, login window, global domain.
		Preferences: []PreferenceGroup{
			{
				Area: "dock",
				Settings: []PreferenceSetting{
					{Domain: DockDomain, Key: "autohide", Value: "true"},
					{Domain: DockDomain, Key: "tilesize", Value: "60"},
				},
			},
			{
				Area: "finder",
				Settings: []PreferenceSetting{
					{Domain: FinderDomain, Key: "AppleShowAllExtensions", Value: "true"},
					{Domain: FinderDomain, Key: "AppleShowAllFiles", Value: "true"},
				},
			},
			{
				Area: "loginwindow",
				Settings: []PreferenceSetting{
					{Domain: LoginWindowDomain, Key: "GuestEnabled", Value: "false"},
				},
			},
			{
				Area: "global",
				Settings: []PreferenceSetting{
					{Domain: GlobalDomain, Key: "com.apple.swipescrolldirection", Value: "false"},
					{Domain: GlobalDomain, Key: "AppleICUForce24HourTime", Value: "true"},
					{Domain: GlobalDomain, Key: "AppleInterfaceStyleSwitchesAutomatically", Value: "true"},
				},
			},
		},
		DockApps: []string{
			"/System/Volumes/Data/Applications/Firefox Developer Edition.app",
			"/System/Volumes/Data/Applications/Thunderbird.app",
			"/System/Volumes/Data/Applications/Slack.app",
			"/System/Volumes/Data/Applications/Discord.app",
		},
	}
}
