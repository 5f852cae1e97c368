// Package key defines physical keyboard keys and modifier sets.
//
// Keys identify physical positions (letters, digits, arrows, function
// keys), independent of layout or produced character. Modifiers are a
// bit-set over Shift, Ctrl, Alt, and Super.
package key
