package keytab

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/dshills/keytab/internal/logging"
)

// polarity tracks whether the next item of a key sequence descriptor is
// required to be present or absent. A '+' switches to requirePresent and a
// '-' to requireAbsent; the setting persists until changed.
type polarity int

const (
	requirePresent polarity = iota
	requireAbsent
)

// sequence holds the decoded parts of a key sequence descriptor.
type sequence struct {
	key       Key
	mods      Modifier
	modMask   Modifier
	states    State
	stateMask State
}

// decodeSequence decodes a descriptor like "home-anymod-appcukeys" into a
// key code plus modifier and state constraints. The text must already be
// lower-cased with internal whitespace removed.
//
// Decoding never fails: items that are not a modifier name, a state flag
// name, or a key name are logged and dropped. Masks record every
// classified modifier and flag regardless of polarity; the requirement
// sets record them only under requirePresent.
func decodeSequence(text string, log *logging.Logger) sequence {
	var seq sequence
	var buf strings.Builder

	pol := requirePresent
	runes := []rune(text)

	for i, ch := range runes {
		isAlnum := unicode.IsLetter(ch) || unicode.IsDigit(ch)
		endOfItem := true
		if isAlnum {
			endOfItem = false
			buf.WriteRune(ch)
		} else if i == 0 {
			// Seed a potential multi-character leading symbol.
			buf.WriteRune(ch)
		}

		if (endOfItem || i == len(runes)-1) && buf.Len() > 0 {
			item := buf.String()
			switch {
			case ModifierFromName(item) != ModNone:
				mod := ModifierFromName(item)
				seq.modMask = seq.modMask.With(mod)
				if pol == requirePresent {
					seq.mods = seq.mods.With(mod)
				}
			case StateFromName(item) != StateNone:
				flag := StateFromName(item)
				seq.stateMask = seq.stateMask.With(flag)
				if pol == requirePresent {
					seq.states = seq.states.With(flag)
				}
			case KeyFromName(item) != KeyNone:
				seq.key = KeyFromName(item)
			default:
				log.Debug("unable to parse key binding item: %q", item)
			}
			buf.Reset()
		}

		switch ch {
		case '+':
			pol = requirePresent
		case '-':
			pol = requireAbsent
		}
	}

	return seq
}

// Reader parses a keytab document into a lazy, forward-only sequence of
// entries. It owns its input for its lifetime; once the input is
// exhausted, HasNext is permanently false.
//
// The reader works one entry ahead: construction captures the description
// from the first title line (if any precedes the first binding) and
// pre-decodes the first entry, and every Next call pre-decodes the
// following one.
type Reader struct {
	input       *bufio.Reader
	tok         *Tokenizer
	log         *logging.Logger
	description string
	next        Entry
	hasNext     bool
	exhausted   bool
}

// NewReader creates a reader over a keytab document. A nil logger discards
// diagnostics.
func NewReader(r io.Reader, log *logging.Logger) *Reader {
	if log == nil {
		log = logging.NullLogger
	}
	kr := &Reader{
		input: bufio.NewReader(r),
		tok:   NewTokenizer(log),
		log:   log,
	}

	// Read input until the description is found. A binding that appears
	// before any title line becomes the first entry and leaves the
	// description empty.
	for {
		line, ok := kr.readLine()
		if !ok {
			break
		}
		tokens := kr.tok.Tokenize(line)
		if len(tokens) == 0 {
			continue
		}
		if tokens[0].Type == TokenTitleKeyword {
			kr.description = tokens[1].Text
			break
		}
		if tokens[0].Type == TokenKeyKeyword {
			kr.next = kr.decodeEntry(tokens)
			kr.hasNext = true
			return kr
		}
	}

	kr.readNext()
	return kr
}

// Description returns the translator description from the document's title
// line, or "" if no title preceded the first binding.
func (r *Reader) Description() string {
	return r.description
}

// HasNext reports whether another entry is available.
func (r *Reader) HasNext() bool {
	return r.hasNext
}

// Next returns the next entry and advances the reader. Calling Next when
// HasNext is false is a programming error and panics.
func (r *Reader) Next() Entry {
	if !r.hasNext {
		panic("keytab: Next called with no next entry")
	}
	entry := r.next
	r.readNext()
	return entry
}

// ParseError reports whether parsing failed. Recognition failures are
// logged and skipped rather than surfaced, so this always returns false;
// it exists for interface compatibility and is informational only.
func (r *Reader) ParseError() bool {
	return false
}

// readLine returns the next input line without its terminator. Lines have
// no length limit. A read failure other than end of input is logged and
// ends the document.
func (r *Reader) readLine() (string, bool) {
	if r.exhausted {
		return "", false
	}
	line, err := r.input.ReadString('\n')
	if err != nil {
		r.exhausted = true
		if !errors.Is(err, io.EOF) {
			r.log.Warn("reading keytab input: %v", err)
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

// readNext scans forward to the next binding line and buffers its decoded
// entry. Blank lines, comments, and extra title lines are skipped.
func (r *Reader) readNext() {
	for {
		line, ok := r.readLine()
		if !ok {
			break
		}
		tokens := r.tok.Tokenize(line)
		if len(tokens) == 0 || tokens[0].Type != TokenKeyKeyword {
			continue
		}
		r.next = r.decodeEntry(tokens)
		r.hasNext = true
		return
	}
	r.hasNext = false
}

// decodeEntry turns the three tokens of a binding line into an Entry.
func (r *Reader) decodeEntry(tokens []Token) Entry {
	seq := decodeSequence(strings.ToLower(tokens[1].Text), r.log)

	var entry Entry
	entry.SetKeyCode(seq.key)
	entry.SetModifiers(seq.mods)
	entry.SetModifierMask(seq.modMask)
	entry.SetState(seq.states)
	entry.SetStateMask(seq.stateMask)

	switch tokens[2].Type {
	case TokenOutputText:
		entry.SetText([]byte(tokens[2].Text))
	case TokenCommand:
		command, ok := CommandFromName(tokens[2].Text)
		if !ok {
			r.log.Debug("key %q, command %q not understood", tokens[1].Text, tokens[2].Text)
		}
		entry.SetCommand(command)
	}

	return entry
}

// CreateEntry builds a single entry from a condition descriptor and a
// result string, without a backing document. The result is treated as a
// command if it names one, and as literal output text otherwise. The
// synthetic document runs through a fresh Reader so that programmatic and
// file-sourced bindings parse identically.
func CreateEntry(condition, result string, log *logging.Logger) Entry {
	var b strings.Builder
	b.WriteString("keyboard \"temporary\"\nkey ")
	b.WriteString(condition)
	b.WriteString(" : ")
	if _, ok := CommandFromName(result); ok {
		b.WriteString(result)
	} else {
		b.WriteString("\"" + result + "\"")
	}

	reader := NewReader(strings.NewReader(b.String()), log)
	if reader.HasNext() {
		return reader.Next()
	}
	return Entry{}
}
