package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the input layer's tuning knobs, persisted as TOML.
type Settings struct {
	// DeadZone is the stick magnitude below which input reads as zero.
	DeadZone float64 `toml:"dead_zone"`

	// MouseSensitivity scales mouse deltas into analog range.
	MouseSensitivity float64 `toml:"mouse_sensitivity"`

	// InitialContext names the base context pushed at startup.
	InitialContext string `toml:"initial_context"`
}

// DefaultSettings returns the stock tuning values.
func DefaultSettings() Settings {
	return Settings{
		DeadZone:         0.15,
		MouseSensitivity: 0.1,
		InitialContext:   "gameplay",
	}
}

// Validate checks value ranges, normalizing out-of-range values is the
// caller's choice; Validate only reports.
func (s Settings) Validate() error {
	if s.DeadZone < 0 || s.DeadZone >= 1 {
		return fmt.Errorf("%w: dead_zone %v out of range [0, 1)", ErrMalformedConfig, s.DeadZone)
	}
	if s.MouseSensitivity <= 0 {
		return fmt.Errorf("%w: mouse_sensitivity %v must be positive", ErrMalformedConfig, s.MouseSensitivity)
	}
	if s.InitialContext == "" {
		return fmt.Errorf("%w: initial_context must not be empty", ErrMalformedConfig)
	}
	return nil
}

// LoadSettings loads tuning settings from a TOML file.
//
// Same contract as LoadBindings: an absent or malformed file yields the
// defaults with OutcomeUseDefault and the error detail.
func LoadSettings(path string) (Settings, Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), OutcomeUseDefault,
			fmt.Errorf("%w: reading %s: %v", ErrConfigUnavailable, path, err)
	}

	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), OutcomeUseDefault, &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), OutcomeUseDefault, &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
	}
	return s, OutcomeLoaded, nil
}

// SaveSettings writes tuning settings to a TOML file.
func SaveSettings(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
