package keytab

import (
	"fmt"
	"io"
)

// Writer serializes translators back to the keytab text format. The output
// parses back to an equivalent translator.
type Writer struct {
	w io.Writer
}

// NewWriter creates a writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the title line.
func (w *Writer) WriteHeader(description string) error {
	_, err := fmt.Fprintf(w.w, "keyboard \"%s\"\n", description)
	return err
}

// WriteEntry writes one key binding line.
func (w *Writer) WriteEntry(entry Entry) error {
	_, err := fmt.Fprintf(w.w, "key %s : %s\n", entry.ConditionString(), entry.ResultString())
	return err
}

// Write serializes a whole translator: the title line followed by one
// binding line per entry, in document order.
func (w *Writer) Write(t *Translator) error {
	if err := w.WriteHeader(t.Description()); err != nil {
		return err
	}
	for _, entry := range t.Entries() {
		if err := w.WriteEntry(entry); err != nil {
			return err
		}
	}
	return nil
}
