package keytab

import "strings"

// Entry is one fully decoded key binding: a key code, the modifier and
// state constraints that gate it, and the resulting action. The action is
// exactly one of literal output bytes or a named command; an entry with
// neither is a no-op.
//
// Entries are independent values; the Reader constructs one at a time and
// hands ownership to the caller.
type Entry struct {
	keyCode      Key
	modifiers    Modifier
	modifierMask Modifier
	state        State
	stateMask    State
	command      Command
	text         []byte
}

// SetKeyCode sets the key this entry binds.
func (e *Entry) SetKeyCode(k Key) { e.keyCode = k }

// SetModifiers sets the modifiers that must be present.
func (e *Entry) SetModifiers(m Modifier) { e.modifiers = m }

// SetModifierMask sets which modifiers are constrained, whether
// required-present or required-absent.
func (e *Entry) SetModifierMask(m Modifier) { e.modifierMask = m }

// SetState sets the state flags that must be present.
func (e *Entry) SetState(s State) { e.state = s }

// SetStateMask sets which state flags are constrained.
func (e *Entry) SetStateMask(s State) { e.stateMask = s }

// SetCommand sets the named command this entry triggers.
func (e *Entry) SetCommand(c Command) { e.command = c }

// SetText sets the literal output bytes this entry sends.
func (e *Entry) SetText(text []byte) { e.text = text }

// KeyCode returns the key this entry binds.
func (e Entry) KeyCode() Key { return e.keyCode }

// Modifiers returns the modifiers that must be present.
func (e Entry) Modifiers() Modifier { return e.modifiers }

// ModifierMask returns which modifiers are constrained.
func (e Entry) ModifierMask() Modifier { return e.modifierMask }

// State returns the state flags that must be present.
func (e Entry) State() State { return e.state }

// StateMask returns which state flags are constrained.
func (e Entry) StateMask() State { return e.stateMask }

// Command returns the named command this entry triggers, or CmdNone.
func (e Entry) Command() Command { return e.command }

// Text returns the literal output bytes this entry sends, or nil.
func (e Entry) Text() []byte { return e.text }

// IsZero returns true if the entry has not been populated.
func (e Entry) IsZero() bool {
	return e.keyCode == KeyNone && e.modifierMask == ModNone &&
		e.stateMask == StateNone && e.command == CmdNone && e.text == nil
}

// Matches reports whether a key press with the given modifiers, arriving
// while the terminal is in the given states, satisfies this entry's
// constraints. Only modifiers and flags named in the masks are compared;
// everything else is unconstrained. The AnyModifier pseudo-state is derived
// from the modifier set before comparison.
func (e Entry) Matches(key Key, mods Modifier, states State) bool {
	if key != e.keyCode {
		return false
	}
	if mods&e.modifierMask != e.modifiers&e.modifierMask {
		return false
	}
	if mods != ModNone {
		states = states.With(StateAnyModifier)
	}
	return states&e.stateMask == e.state&e.stateMask
}

// ConditionString returns the textual key sequence descriptor for this
// entry, e.g. "Home-AnyMod-AppCuKeys". It round-trips through the Reader
// for every key the binding grammar can name; a rune key outside the
// letter and digit range has no descriptor spelling, since the decoder
// treats punctuation as item separators.
func (e Entry) ConditionString() string {
	var b strings.Builder
	b.WriteString(e.keyCode.String())

	for _, mod := range modifierOrder {
		if !e.modifierMask.Has(mod) {
			continue
		}
		if e.modifiers.Has(mod) {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(modifierNames[mod])
	}

	for _, flag := range stateOrder {
		if !e.stateMask.Has(flag) {
			continue
		}
		if e.state.Has(flag) {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(stateNames[flag])
	}

	return b.String()
}

// ResultString returns the textual result for this entry: the command name,
// or the output text wrapped in double quotes. Output bytes are written
// verbatim; the format supports no escaping inside quotes.
func (e Entry) ResultString() string {
	if e.command != CmdNone {
		return e.command.String()
	}
	return "\"" + string(e.text) + "\""
}
