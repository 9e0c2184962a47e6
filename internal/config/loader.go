package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML document on top of the defaults and validates it.
// A keys section, when present, replaces every default binding.
// source is used in error messages.
func Parse(data []byte, source string) (Config, error) {
	if err := ValidateDocument(data); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}

	// A keys section replaces the default bindings as a whole; yaml.v3 would
	// otherwise merge it into the default map.
	cfg := Default()
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if cfg.Keys == nil {
		cfg.Keys = Default().Keys
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Load loads the overworld configuration.
// Search order: customPath -> ~/.overworld/overworld.yaml -> ./configs/overworld.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("overworld.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "overworld.yaml")); err == nil {
		if cfg, err := Parse(data, "configs/overworld.yaml"); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML, "embedded")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".overworld", filename)
}
