package key

import "testing"

func TestModifierHas(t *testing.T) {
	tests := []struct {
		name string
		mods Modifier
		mod  Modifier
		want bool
	}{
		{"empty has none", ModNone, ModCtrl, false},
		{"single match", ModCtrl, ModCtrl, true},
		{"single mismatch", ModCtrl, ModShift, false},
		{"combined match", ModCtrl | ModShift, ModShift, true},
		{"combined mismatch", ModCtrl | ModShift, ModAlt, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mods.Has(tt.mod); got != tt.want {
				t.Errorf("Has() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifierHasAll(t *testing.T) {
	tests := []struct {
		name string
		held Modifier
		want Modifier
		ok   bool
	}{
		{"exact", ModCtrl | ModShift, ModCtrl | ModShift, true},
		{"superset held", ModCtrl | ModShift | ModAlt, ModCtrl | ModShift, true},
		{"missing one", ModCtrl, ModCtrl | ModShift, false},
		{"none required", ModCtrl, ModNone, true},
		{"none held none required", ModNone, ModNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.held.HasAll(tt.want); got != tt.ok {
				t.Errorf("HasAll() = %v, want %v", got, tt.ok)
			}
		})
	}
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Errorf("With() did not add modifiers: %v", m)
	}

	m = m.Without(ModCtrl)
	if m.Has(ModCtrl) {
		t.Error("Without() did not remove Ctrl")
	}
	if !m.Has(ModShift) {
		t.Error("Without() removed Shift unexpectedly")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModShift, "Shift"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModCtrl | ModAlt | ModShift | ModSuper, "Ctrl+Alt+Shift+Super"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.mods, got, tt.want)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  Modifier
	}{
		{"ctrl", ModCtrl},
		{"Ctrl+Shift", ModCtrl | ModShift},
		{"cmd", ModSuper},
		{"meta", ModSuper},
		{"shift+alt+ctrl", ModShift | ModAlt | ModCtrl},
		{"bogus", ModNone},
		{"", ModNone},
	}

	for _, tt := range tests {
		if got := ParseModifiers(tt.input); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestModifierNames(t *testing.T) {
	names := (ModCtrl | ModShift).Names()
	if len(names) != 2 || names[0] != "ctrl" || names[1] != "shift" {
		t.Errorf("Names() = %v, want [ctrl shift]", names)
	}
	if got := ModNone.Names(); got != nil {
		t.Errorf("Names() for ModNone = %v, want nil", got)
	}
}
