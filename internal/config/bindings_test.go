package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
	"github.com/dshills/inputforge/internal/input/inputmap"
	"github.com/dshills/inputforge/internal/input/key"
)

func TestLoadBindingsAbsent(t *testing.T) {
	m, outcome, err := LoadBindings(filepath.Join(t.TempDir(), "missing.json"))

	if outcome != OutcomeUseDefault {
		t.Errorf("outcome = %v, want use_default", outcome)
	}
	if !errors.Is(err, ErrConfigUnavailable) {
		t.Errorf("error %v does not wrap ErrConfigUnavailable", err)
	}
	if m == nil || !m.Equal(inputmap.Default()) {
		t.Error("absent file did not yield the default map")
	}
}

func TestLoadBindingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	m, outcome, err := LoadBindings(path)
	if outcome != OutcomeUseDefault {
		t.Errorf("outcome = %v, want use_default", outcome)
	}
	if !errors.Is(err, inputmap.ErrMalformed) {
		t.Errorf("error %v does not wrap ErrMalformed", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not a ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
	if m == nil || !m.Equal(inputmap.Default()) {
		t.Error("malformed file did not yield the default map")
	}
}

func TestSaveLoadBindingsRoundTrip(t *testing.T) {
	m := inputmap.New()
	m.Bind(action.Jump, binding.Key(key.KeyJ))
	m.Bind(action.Pause, binding.Key(key.KeyP))

	path := filepath.Join(t.TempDir(), "profiles", "bindings.json")
	if err := SaveBindings(path, m); err != nil {
		t.Fatalf("SaveBindings: %v", err)
	}

	got, outcome, err := LoadBindings(path)
	if err != nil {
		t.Fatalf("LoadBindings: %v", err)
	}
	if outcome != OutcomeLoaded {
		t.Errorf("outcome = %v, want loaded", outcome)
	}
	if !m.Equal(got) {
		t.Error("round trip changed the map")
	}
}
