package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PackageSpec names a package to install, optionally pinned to a version.
// Two specs with the same Name refer to the same package.
//
// In a desired-state document a package is either a bare string ("git") or a
// mapping with name and version keys.
type PackageSpec struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// Pkg is shorthand for an unpinned PackageSpec.
func Pkg(name string) PackageSpec {
	return PackageSpec{Name: name}
}

// Ref returns the reference handed to the package manager: the name, or
// name@version for pinned packages (Homebrew's versioned formula syntax).
func (p PackageSpec) Ref() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "@" + p.Version
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (p *PackageSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*p = PackageSpec{Name: node.Value}
		return nil
	}
	type plain PackageSpec
	var v plain
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = PackageSpec(v)
	return nil
}

// UnmarshalJSON accepts both the string and the object form.
func (p *PackageSpec) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = PackageSpec{Name: name}
		return nil
	}
	type plain PackageSpec
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = PackageSpec(v)
	return nil
}

// PreferenceSetting is one OS preference store entry.
// - Domain: preference domain (e.g., com.apple.dock, NSGlobalDomain).
// - Key: key inside the domain.
// - Value: the value, always stringified ("true", "60").
// - Type: optional value type ("bool", "int", "float", "string"). Empty means
// the value is written untyped.
type PreferenceSetting struct {
	Domain string `yaml:"domain" json:"domain"`
	Key    string `yaml:"key" json:"key"`
	Value  string `yaml:"value" json:"value"`
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
}

// ID returns the "domain:key" identity of the setting.
func (s PreferenceSetting) ID() string {
	return s.Domain + ":" + s.Key
}

// PreferenceGroup bundles the settings of one logical area (dock, finder, ...).
type PreferenceGroup struct {
	Area     string              `yaml:"area" json:"area"`
	Settings []PreferenceSetting `yaml:"settings" json:"settings"`
}

// Activation holds the post-install directives and the user they run for.
type Activation struct {
	Username       string `yaml:"username" json:"username"`
	DefaultBrowser string `yaml:"default_browser" json:"default_browser"`
	HomeDirectory  string `yaml:"home_directory" json:"home_directory"`
	Toolchain      string `yaml:"toolchain" json:"toolchain"`
}

// DesiredState is the full target configuration of the machine.
// It is built once per invocation (Default or Load) and only read afterwards.
type DesiredState struct {
	Activation     Activation        `yaml:"activation" json:"activation"`
	SystemPackages []PackageSpec     `yaml:"system_packages" json:"system_packages"`
	Brews          []PackageSpec     `yaml:"brews" json:"brews"`
	Casks          []string          `yaml:"casks" json:"casks"`
	Preferences    []PreferenceGroup `yaml:"preferences" json:"preferences"`
	DockApps       []string          `yaml:"dock_apps" json:"dock_apps"`
}

// Settings flattens the preference groups in declaration order.
func (d DesiredState) Settings() []PreferenceSetting {
	var out []PreferenceSetting
	for _, g := range d.Preferences {
		out = append(out, g.Settings...)
	}
	return out
}

// Setting looks up a preference by domain and key.
func (d DesiredState) Setting(domain, key string) (PreferenceSetting, bool) {
	for _, s := range d.Settings() {
		if s.Domain == domain && s.Key == key {
			return s, true
		}
	}
	return PreferenceSetting{}, false
}

// HasSystemPackage reports whether name is among the declarative packages.
func (d DesiredState) HasSystemPackage(name string) bool {
	return hasPackage(d.SystemPackages, name)
}

// HasBrew reports whether name is among the brews.
func (d DesiredState) HasBrew(name string) bool {
	return hasPackage(d.Brews, name)
}

// HasCask reports whether name is among the casks.
func (d DesiredState) HasCask(name string) bool {
	for _, c := range d.Casks {
		if c == name {
			return true
		}
	}
	return false
}

func hasPackage(pkgs []PackageSpec, name string) bool {
	for _, p := range pkgs {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Validate checks the structural requirements the engine relies on.
// All problems are reported together.
func (d DesiredState) Validate() error {
	var errs []error
	if d.Activation.Username == "" {
		errs = append(errs, errors.New("activation.username is required"))
	}
	for i, p := range d.SystemPackages {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("system_packages[%d]: name is required", i))
		}
	}
	for i, p := range d.Brews {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("brews[%d]: name is required", i))
		}
	}
	for i, c := range d.Casks {
		if c == "" {
			errs = append(errs, fmt.Errorf("casks[%d]: name is required", i))
		}
	}
	for _, g := range d.Preferences {
		for i, s := range g.Settings {
			if s.Domain == "" || s.Key == "" {
				errs = append(errs, fmt.Errorf("preferences[%s][%d]: domain and key are required", g.Area, i))
			}
			switch s.Type {
			case "", "bool", "int", "float", "string":
			default:
				errs = append(errs, fmt.Errorf("preferences[%s][%d]: unknown type %q", g.Area, i, s.Type))
			}
		}
	}
	return errors.Join(errs...)
}
