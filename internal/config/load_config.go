package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"nix-config/internal/logger"
)

// Resolve returns the desired state for this invocation: the built-in table
// when path is empty, otherwise the document at path laid over it.
func Resolve(path string) (DesiredState, error) {
	if path == "" {
		logger.Debug("[DEBUG] No desired-state document given, using built-in defaults\n")
		return Default(), nil
	}
	return Load(path)
}

// Load reads a desired-state document and overlays it on Default.
// Top-level keys present in the document replace the default value, absent keys
// keep it. YAML (.yaml, .yml) and JSON with comments (.json, .jsonc) are supported.
func Load(path string) (DesiredState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return DesiredState{}, fmt.Errorf("read desired state %s: %w", path, err)
	}

	ds, err := Parse(raw, filepath.Ext(path))
	if err != nil {
		return DesiredState{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("[DEBUG] Loaded desired state from %s: %d brews, %d casks, %d settings\n",
		path, len(ds.Brews), len(ds.Casks), len(ds.Settings()))
	return ds, nil
}

// Parse decodes a document in the format named by ext (with or without the
// leading dot), overlays it on Default and validates the result.
func Parse(raw []byte, ext string) (DesiredState, error) {
	ds := Default()

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(raw, &ds); err != nil {
			return DesiredState{}, fmt.Errorf("unmarshal yaml: %w", err)
		}
	case "json", "jsonc":
		// jsonc strips // and /* */ comments plus trailing commas.
		stripped := jsonc.ToJSON(raw)
		if len(bytes.TrimSpace(stripped)) > 0 {
			if err := json.Unmarshal(stripped, &ds); err != nil {
				return DesiredState{}, fmt.Errorf("unmarshal json: %w", err)
			}
		}
	default:
		return DesiredState{}, fmt.Errorf("unsupported desired state format %q", ext)
	}

	if err := ds.Validate(); err != nil {
		return DesiredState{}, fmt.Errorf("invalid desired state: %w", err)
	}
	return ds, nil
}
