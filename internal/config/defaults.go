package config

import (
	_ "embed"
)

//go:embed defaults/overworld.yaml
var defaultYAML []byte

//go:embed defaults/overworld.schema.json
var schemaJSON string

// Default returns the hardcoded default configuration.
// It matches defaults/overworld.yaml.
func Default() Config {
	return Config{
		Display: Display{
			PixelScale:     1,
			StepRate:       12,
			ReleaseAfterMs: 180,
			ScreenW:        80,
			ScreenH:        24,
		},
		Keys: map[string][]string{
			"ArrowUp":    {"up", "w", "k"},
			"ArrowDown":  {"down", "s", "j"},
			"ArrowLeft":  {"left", "a", "h"},
			"ArrowRight": {"right", "d", "l"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default config document.
func DefaultYAML() []byte {
	return defaultYAML
}
