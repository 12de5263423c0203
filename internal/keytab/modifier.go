package keytab

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key.
	ModAlt

	// ModMeta indicates the Meta key.
	ModMeta

	// ModKeypad indicates a keypad key.
	ModKeypad
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// modifierOrder is the canonical order modifiers appear in serialized
// key sequences.
var modifierOrder = [...]Modifier{ModShift, ModCtrl, ModAlt, ModMeta, ModKeypad}

// String returns the canonical keytab name for a single modifier, or a
// +-joined list for a combination like "Shift+Ctrl".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	for _, mod := range modifierOrder {
		if m.Has(mod) {
			parts = append(parts, modifierNames[mod])
		}
	}
	return strings.Join(parts, "+")
}

// modifierNames maps single modifiers to their canonical keytab names.
var modifierNames = map[Modifier]string{
	ModShift:  "Shift",
	ModCtrl:   "Ctrl",
	ModAlt:    "Alt",
	ModMeta:   "Meta",
	ModKeypad: "Keypad",
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"shift":   ModShift,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"meta":    ModMeta,
	"keypad":  ModKeypad,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(name)]; ok {
		return m
	}
	return ModNone
}
