package keytab

import "strings"

// State represents terminal mode flags that gate whether a key binding
// applies. A binding may require a flag to be present or absent; flags it
// does not mention are unconstrained.
type State uint8

const (
	// StateNone indicates no state flags.
	StateNone State = 0

	// StateCursorKeys indicates application cursor keys mode (DECCKM).
	StateCursorKeys State = 1 << iota

	// StateAnsi indicates ANSI (as opposed to VT52) mode.
	StateAnsi

	// StateNewLine indicates newline mode (LNM).
	StateNewLine

	// StateAlternateScreen indicates the alternate screen is active.
	StateAlternateScreen

	// StateAnyModifier indicates any keyboard modifier is held. It is a
	// pseudo-state derived from the modifier set at lookup time.
	StateAnyModifier

	// StateApplicationKeypad indicates application keypad mode (DECKPAM).
	StateApplicationKeypad
)

// Has returns true if s contains the specified flag.
func (s State) Has(flag State) bool {
	return s&flag != 0
}

// With returns a new State with the specified flag added.
func (s State) With(flag State) State {
	return s | flag
}

// Without returns a new State with the specified flag removed.
func (s State) Without(flag State) State {
	return s &^ flag
}

// IsEmpty returns true if no flags are set.
func (s State) IsEmpty() bool {
	return s == StateNone
}

// stateOrder is the canonical order state flags appear in serialized
// key sequences.
var stateOrder = [...]State{
	StateCursorKeys,
	StateAnsi,
	StateNewLine,
	StateAlternateScreen,
	StateAnyModifier,
	StateApplicationKeypad,
}

// String returns the canonical keytab name for a single flag, or a
// +-joined list for a combination like "Ansi+NewLine".
func (s State) String() string {
	if s == StateNone {
		return ""
	}

	var parts []string
	for _, flag := range stateOrder {
		if s.Has(flag) {
			parts = append(parts, stateNames[flag])
		}
	}
	return strings.Join(parts, "+")
}

// stateNames maps single flags to their canonical keytab names.
var stateNames = map[State]string{
	StateCursorKeys:        "AppCuKeys",
	StateAnsi:              "Ansi",
	StateNewLine:           "NewLine",
	StateAlternateScreen:   "AppScreen",
	StateAnyModifier:       "AnyMod",
	StateApplicationKeypad: "AppKeypad",
}

// stateNameMap maps state flag names (lowercase) to State values.
var stateNameMap = map[string]State{
	"appcukeys":     StateCursorKeys,
	"appcursorkeys": StateCursorKeys,
	"ansi":          StateAnsi,
	"newline":       StateNewLine,
	"appscreen":     StateAlternateScreen,
	"anymod":        StateAnyModifier,
	"anymodifier":   StateAnyModifier,
	"appkeypad":     StateApplicationKeypad,
}

// StateFromName returns the State flag for a given name (case-insensitive).
// Returns StateNone if the name is not recognized.
func StateFromName(name string) State {
	if s, ok := stateNameMap[strings.ToLower(name)]; ok {
		return s
	}
	return StateNone
}
