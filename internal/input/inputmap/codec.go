package inputmap

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
	"github.com/dshills/inputforge/internal/input/gamepad"
	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

// ErrMalformed indicates data that cannot be parsed into a structurally
// valid map: broken JSON, unknown variant tags, unregistered action names,
// or payload values out of range.
var ErrMalformed = errors.New("malformed input map")

// documentVersion is the current serialization format version.
const documentVersion = 1

// mapConfig is the JSON document structure. Actions are an ordered array
// so the document is deterministic and the round trip preserves order.
type mapConfig struct {
	Version int            `json:"version"`
	Actions []actionConfig `json:"actions"`
}

type actionConfig struct {
	Action   string          `json:"action"`
	Bindings []bindingConfig `json:"bindings"`
}

type bindingConfig struct {
	Source string   `json:"source"`
	Key    string   `json:"key,omitempty"`
	Mods   []string `json:"mods,omitempty"`
	Button string   `json:"button,omitempty"`
	Axis   string   `json:"axis,omitempty"`
	Sign   string   `json:"sign,omitempty"`
}

// Serialize encodes the map as a JSON document. Actions are emitted in
// name order; binding lists keep their stored order.
func (m *Map) Serialize() ([]byte, error) {
	config := mapConfig{
		Version: documentVersion,
		Actions: make([]actionConfig, 0, len(m.bindings)),
	}

	for _, a := range m.Actions() {
		ac := actionConfig{
			Action:   a.String(),
			Bindings: make([]bindingConfig, 0, len(m.bindings[a])),
		}
		for _, b := range m.bindings[a] {
			ac.Bindings = append(ac.Bindings, encodeBinding(b))
		}
		config.Actions = append(config.Actions, ac)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding input map: %w", err)
	}
	return data, nil
}

// Deserialize parses a JSON document into a map. Fails with ErrMalformed
// when the data is not a structurally valid map; the caller decides
// whether to fall back to defaults.
func Deserialize(data []byte) (*Map, error) {
	var config mapConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if config.Version != documentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformed, config.Version)
	}

	m := New()
	for _, ac := range config.Actions {
		a, ok := action.FromName(ac.Action)
		if !ok {
			return nil, fmt.Errorf("%w: unknown action %q", ErrMalformed, ac.Action)
		}
		list := make([]binding.Binding, 0, len(ac.Bindings))
		for _, bc := range ac.Bindings {
			b, err := decodeBinding(bc)
			if err != nil {
				return nil, fmt.Errorf("%w: action %q: %v", ErrMalformed, ac.Action, err)
			}
			list = append(list, b)
		}
		m.bindings[a] = list
	}
	return m, nil
}

func encodeBinding(b binding.Binding) bindingConfig {
	bc := bindingConfig{Source: b.Source.String()}
	switch b.Source {
	case binding.SourceKey:
		bc.Key = b.Key.String()
		bc.Mods = b.Mods.Names()
	case binding.SourceMouseButton:
		bc.Button = b.MouseButton.String()
		bc.Mods = b.Mods.Names()
	case binding.SourceMouseAxis:
		bc.Axis = b.MouseAxis.String()
	case binding.SourceGamepadButton:
		bc.Button = b.GamepadButton.String()
	case binding.SourceGamepadAxis:
		bc.Axis = b.GamepadAxis.String()
		bc.Sign = b.Sign.String()
	}
	return bc
}

func decodeBinding(bc bindingConfig) (binding.Binding, error) {
	source, ok := binding.SourceFromName(bc.Source)
	if !ok || source == binding.SourceNone {
		return binding.Binding{}, fmt.Errorf("unknown binding source %q", bc.Source)
	}

	var b binding.Binding
	switch source {
	case binding.SourceKey:
		k := key.FromName(bc.Key)
		if k == key.KeyNone {
			return binding.Binding{}, fmt.Errorf("unknown key %q", bc.Key)
		}
		mods, err := decodeMods(bc.Mods)
		if err != nil {
			return binding.Binding{}, err
		}
		b = binding.KeyWithModifiers(k, mods)
	case binding.SourceMouseButton:
		btn := mouse.ButtonFromName(bc.Button)
		if btn == mouse.ButtonNone {
			return binding.Binding{}, fmt.Errorf("unknown mouse button %q", bc.Button)
		}
		mods, err := decodeMods(bc.Mods)
		if err != nil {
			return binding.Binding{}, err
		}
		b = binding.MouseButtonWithModifiers(btn, mods)
	case binding.SourceMouseAxis:
		axis := mouse.AxisFromName(bc.Axis)
		if axis == mouse.AxisNone {
			return binding.Binding{}, fmt.Errorf("unknown mouse axis %q", bc.Axis)
		}
		b = binding.MouseAxis(axis)
	case binding.SourceGamepadButton:
		btn := gamepad.ButtonFromName(bc.Button)
		if btn == gamepad.ButtonNone {
			return binding.Binding{}, fmt.Errorf("unknown gamepad button %q", bc.Button)
		}
		b = binding.GamepadButton(btn)
	case binding.SourceGamepadAxis:
		axis := gamepad.AxisFromName(bc.Axis)
		if axis == gamepad.AxisNone {
			return binding.Binding{}, fmt.Errorf("unknown gamepad axis %q", bc.Axis)
		}
		sign, err := decodeSign(bc.Sign)
		if err != nil {
			return binding.Binding{}, err
		}
		b = binding.GamepadAxis(axis, sign)
	}

	if err := b.Validate(); err != nil {
		return binding.Binding{}, err
	}
	return b, nil
}

func decodeMods(names []string) (key.Modifier, error) {
	var mods key.Modifier
	for _, name := range names {
		m := key.ModifierFromName(name)
		if m == key.ModNone {
			return key.ModNone, fmt.Errorf("unknown modifier %q", name)
		}
		mods = mods.With(m)
	}
	return mods, nil
}

func decodeSign(s string) (gamepad.Sign, error) {
	switch s {
	case "+", "":
		return gamepad.Positive, nil
	case "-":
		return gamepad.Negative, nil
	}
	return 0, fmt.Errorf("unknown axis sign %q", s)
}
