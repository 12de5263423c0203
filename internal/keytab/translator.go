package keytab

import (
	"io"

	"github.com/dshills/keytab/internal/logging"
)

// Translator is a named, ordered collection of key binding entries.
type Translator struct {
	name        string
	description string
	entries     []Entry
}

// NewTranslator creates an empty translator.
func NewTranslator(name, description string) *Translator {
	return &Translator{
		name:        name,
		description: description,
	}
}

// Load reads a whole keytab document into a translator. The document's
// title line, if any, becomes the description.
func Load(name string, r io.Reader, log *logging.Logger) *Translator {
	reader := NewReader(r, log)
	t := NewTranslator(name, reader.Description())
	for reader.HasNext() {
		t.AddEntry(reader.Next())
	}
	return t
}

// Name returns the translator's name.
func (t *Translator) Name() string {
	return t.name
}

// Description returns the translator's human-readable description.
func (t *Translator) Description() string {
	return t.description
}

// SetDescription sets the translator's description.
func (t *Translator) SetDescription(description string) {
	t.description = description
}

// Entries returns the translator's entries in document order. The returned
// slice is owned by the translator and must not be modified.
func (t *Translator) Entries() []Entry {
	return t.entries
}

// AddEntry appends an entry.
func (t *Translator) AddEntry(entry Entry) {
	t.entries = append(t.entries, entry)
}

// ReplaceEntry replaces the first entry with the same key code and masks
// as existing, or appends replacement if none matches.
func (t *Translator) ReplaceEntry(existing, replacement Entry) {
	for i, entry := range t.entries {
		if entry.KeyCode() == existing.KeyCode() &&
			entry.ModifierMask() == existing.ModifierMask() &&
			entry.StateMask() == existing.StateMask() {
			t.entries[i] = replacement
			return
		}
	}
	t.entries = append(t.entries, replacement)
}

// RemoveEntry removes the first entry with the same key code and masks.
func (t *Translator) RemoveEntry(entry Entry) {
	for i, e := range t.entries {
		if e.KeyCode() == entry.KeyCode() &&
			e.ModifierMask() == entry.ModifierMask() &&
			e.StateMask() == entry.StateMask() {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// FindEntry returns the first entry matching a key press with the given
// modifiers while the terminal is in the given states. The second return
// is false when no entry matches.
func (t *Translator) FindEntry(key Key, mods Modifier, states State) (Entry, bool) {
	for _, entry := range t.entries {
		if entry.Matches(key, mods, states) {
			return entry, true
		}
	}
	return Entry{}, false
}
