package key

import (
	"fmt"
	"strings"
)

// Key identifies a physical keyboard key.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Letter keys (physical positions, layout-independent)
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit keys (top row)
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Punctuation keys
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash
	KeyGrave

	keyMax // sentinel, keep last
)

// keyNames maps keys to their canonical display names.
var keyNames = map[Key]string{
	KeyNone:         "None",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeySpace:        "Space",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyA:            "A",
	KeyB:            "B",
	KeyC:            "C",
	KeyD:            "D",
	KeyE:            "E",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyI:            "I",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyM:            "M",
	KeyN:            "N",
	KeyO:            "O",
	KeyP:            "P",
	KeyQ:            "Q",
	KeyR:            "R",
	KeyS:            "S",
	KeyT:            "T",
	KeyU:            "U",
	KeyV:            "V",
	KeyW:            "W",
	KeyX:            "X",
	KeyY:            "Y",
	KeyZ:            "Z",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeyMinus:        "-",
	KeyEqual:        "=",
	KeyLeftBracket:  "[",
	KeyRightBracket: "]",
	KeyBackslash:    "\\",
	KeySemicolon:    ";",
	KeyApostrophe:   "'",
	KeyComma:        ",",
	KeyPeriod:       ".",
	KeySlash:        "/",
	KeyGrave:        "`",
}

// keyAliases maps additional lowercase names to keys for parsing.
var keyAliases = map[string]Key{
	"esc":      KeyEscape,
	"return":   KeyEnter,
	"cr":       KeyEnter,
	"bs":       KeyBackspace,
	"del":      KeyDelete,
	"ins":      KeyInsert,
	"pgup":     KeyPageUp,
	"pgdn":     KeyPageDown,
	"minus":    KeyMinus,
	"equal":    KeyEqual,
	"lbracket": KeyLeftBracket,
	"rbracket": KeyRightBracket,
	"grave":    KeyGrave,
}

// keyNameLookup is the reverse of keyNames, built at init with lowercase keys.
var keyNameLookup = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+len(keyAliases))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}()

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// IsValid returns true if the key is a known physical key.
func (k Key) IsValid() bool {
	return k > KeyNone && k < keyMax
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsLetter returns true if this is a letter key.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true if this is a top-row digit key.
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// FromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameLookup[name]; ok {
		return k
	}
	return KeyNone
}

// FromRune returns the physical key producing the given character on a
// standard layout, or KeyNone for characters with no dedicated key.
func FromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	switch r {
	case ' ':
		return KeySpace
	case '-':
		return KeyMinus
	case '=':
		return KeyEqual
	case '[':
		return KeyLeftBracket
	case ']':
		return KeyRightBracket
	case '\\':
		return KeyBackslash
	case ';':
		return KeySemicolon
	case '\'':
		return KeyApostrophe
	case ',':
		return KeyComma
	case '.':
		return KeyPeriod
	case '/':
		return KeySlash
	case '`':
		return KeyGrave
	}
	return KeyNone
}

// All returns every valid key in numeric order.
func All() []Key {
	keys := make([]Key, 0, int(keyMax)-1)
	for k := KeyNone + 1; k < keyMax; k++ {
		keys = append(keys, k)
	}
	return keys
}
