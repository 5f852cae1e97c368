package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/inputforge/internal/input/inputmap"
)

// Outcome reports how a load request was satisfied.
type Outcome uint8

const (
	// OutcomeLoaded means the persisted configuration was used.
	OutcomeLoaded Outcome = iota

	// OutcomeUseDefault means the source was absent or malformed and the
	// returned configuration is the built-in default.
	OutcomeUseDefault
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeUseDefault:
		return "use_default"
	default:
		return "unknown"
	}
}

// LoadBindings loads the persisted bindings document from path.
//
// On success the persisted map is returned with OutcomeLoaded and a nil
// error. When the file is absent or unreadable, or its contents are
// malformed, the default map is returned with OutcomeUseDefault and the
// error detail; the caller decides whether to log it. This function
// never panics and the returned map is always usable.
func LoadBindings(path string) (*inputmap.Map, Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return inputmap.Default(), OutcomeUseDefault,
			fmt.Errorf("%w: reading %s: %v", ErrConfigUnavailable, path, err)
	}

	m, err := inputmap.Deserialize(data)
	if err != nil {
		return inputmap.Default(), OutcomeUseDefault, &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
	}
	return m, OutcomeLoaded, nil
}

// SaveBindings writes the bindings document to path, creating parent
// directories as needed.
func SaveBindings(path string, m *inputmap.Map) error {
	data, err := m.Serialize()
	if err != nil {
		return fmt.Errorf("serializing bindings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing bindings file: %w", err)
	}
	return nil
}
