// Package config provides YAML-based configuration loading and validation
// for the overworld.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// Config is the full overworld configuration.
type Config struct {
	Display Display             `yaml:"display"`
	Keys    map[string][]string `yaml:"keys"` // canonical identifier -> terminal key names
	Log     LogConfig           `yaml:"log"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// Display defines how the platform layer drives and draws the actor.
type Display struct {
	PixelScale     int `yaml:"pixel_scale"`
	StepRate       int `yaml:"step_rate"`
	ReleaseAfterMs int `yaml:"release_after_ms"`
	ScreenW        int `yaml:"screen_width"`
	ScreenH        int `yaml:"screen_height"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty: discard while the TUI owns the terminal
}

// Upper limits shared with the embedded schema. Flags that override the
// loaded document are only checked by Validate.
const (
	MaxPixelScale = 8
	MaxStepRate   = 120
)

// ReservedKeys are terminal keys the TUI keeps for itself.
var ReservedKeys = []string{"q", "ctrl+c", "esc", "?", " "}

// ReleaseAfter returns the synthesized key-up delay.
func (d Display) ReleaseAfter() time.Duration {
	return time.Duration(d.ReleaseAfterMs) * time.Millisecond
}

// Runtime builds the runtime config for the given terminal size.
// Non-positive sizes fall back to the configured screen size, then to
// core.DefaultConfig.
func (c Config) Runtime(width, height int) core.RuntimeConfig {
	if width <= 0 || height <= 0 {
		width, height = c.Display.ScreenW, c.Display.ScreenH
	}
	if width <= 0 || height <= 0 {
		def := core.DefaultConfig()
		width, height = def.ScreenW, def.ScreenH
	}
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		StepRate:   c.Display.StepRate,
		PixelScale: c.Display.PixelScale,
	}
}

// Aliases inverts Keys: terminal key name -> canonical identifier.
func (c Config) Aliases() map[string]string {
	out := make(map[string]string)
	for id, names := range c.Keys {
		for _, name := range names {
			out[name] = id
		}
	}
	return out
}

// Validate checks the rules the schema cannot express.
func (c Config) Validate() error {
	var errs []error

	if c.Display.PixelScale <= 0 || c.Display.PixelScale > MaxPixelScale {
		errs = append(errs, fmt.Errorf("display.pixel_scale must be in [1, %d], got %d", MaxPixelScale, c.Display.PixelScale))
	}
	if c.Display.StepRate <= 0 || c.Display.StepRate > MaxStepRate {
		errs = append(errs, fmt.Errorf("display.step_rate must be in [1, %d], got %d", MaxStepRate, c.Display.StepRate))
	}
	if c.Display.ReleaseAfterMs <= 0 {
		errs = append(errs, fmt.Errorf("display.release_after_ms must be positive, got %d", c.Display.ReleaseAfterMs))
	}

	reserved := make(map[string]bool, len(ReservedKeys))
	for _, k := range ReservedKeys {
		reserved[k] = true
	}

	ids := make([]string, 0, len(c.Keys))
	for id := range c.Keys {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	owner := make(map[string]string)
	for _, id := range ids {
		if core.ResolveKey(id) == core.DirNone {
			errs = append(errs, fmt.Errorf("keys: unknown key identifier %q", id))
			continue
		}
		for _, name := range c.Keys[id] {
			if reserved[name] {
				errs = append(errs, fmt.Errorf("keys.%s: %q is reserved", id, name))
				continue
			}
			if prev, ok := owner[name]; ok && prev != id {
				errs = append(errs, fmt.Errorf("keys.%s: %q already bound to %s", id, name, prev))
				continue
			}
			owner[name] = id
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
