package keytab

import (
	"regexp"
	"strings"

	"github.com/dshills/keytab/internal/logging"
)

// TokenType identifies the kind of a lexical token.
type TokenType int

const (
	// TokenTitleKeyword is the "keyboard" keyword of a title line.
	TokenTitleKeyword TokenType = iota

	// TokenTitleText is the quoted text of a title line.
	TokenTitleText

	// TokenKeyKeyword is the "key" keyword of a binding line.
	TokenKeyKeyword

	// TokenKeySequence is the key sequence descriptor of a binding line,
	// with internal whitespace removed.
	TokenKeySequence

	// TokenOutputText is the quoted output text of a binding line.
	TokenOutputText

	// TokenCommand is the bare command word of a binding line.
	TokenCommand
)

// Token is one lexical unit of a keytab line. Text is empty for keyword
// tokens.
type Token struct {
	Type TokenType
	Text string
}

// keyLineRE matches a key binding line after comment stripping and
// whitespace normalization. The descriptor capture is non-greedy so that
// the colon separating it from the result is found even when the
// descriptor contains spaces.
//
// Examples:
//
//	key Enter-NewLine                 : "\r"
//	key Home        -AnyMod-AppCuKeys : "\E[H"
var keyLineRE = regexp.MustCompile(`key\s+(.+?)\s*:\s*("(.*)"|\w+)`)

// Tokenizer turns raw keytab lines into tokens, reporting unparseable
// lines to its diagnostic logger.
type Tokenizer struct {
	log *logging.Logger
}

// NewTokenizer creates a tokenizer. A nil logger discards diagnostics.
func NewTokenizer(log *logging.Logger) *Tokenizer {
	if log == nil {
		log = logging.NullLogger
	}
	return &Tokenizer{log: log}
}

// Tokenize splits one line into tokens. Blank lines, pure comments, and
// lines that cannot be parsed produce no tokens; the latter are logged.
func (t *Tokenizer) Tokenize(line string) []Token {
	text := stripComment(line)
	text = simplify(text)

	if text == "" {
		return nil
	}

	// Example:
	// keyboard "Default (XFree 4)"
	const prefix = "keyboard"
	if strings.HasPrefix(text, prefix) {
		text = strings.ReplaceAll(text[len(prefix):], "\"", "")
		text = simplify(text)
		if text == "" {
			return nil
		}
		return []Token{
			{Type: TokenTitleKeyword},
			{Type: TokenTitleText, Text: text},
		}
	}

	m := keyLineRE.FindStringSubmatchIndex(text)
	if m == nil {
		t.log.Debug("line in keyboard translator file could not be parsed: %q", text)
		return nil
	}

	tokens := []Token{
		{Type: TokenKeyKeyword},
		{Type: TokenKeySequence, Text: strings.ReplaceAll(text[m[2]:m[3]], " ", "")},
	}

	// The quoted alternative yields output text, even when the quotes are
	// empty; a bare word is a command name.
	if m[6] >= 0 {
		tokens = append(tokens, Token{Type: TokenOutputText, Text: text[m[6]:m[7]]})
	} else {
		tokens = append(tokens, Token{Type: TokenCommand, Text: text[m[4]:m[5]]})
	}

	return tokens
}

// stripComment removes a trailing # comment from the line. The scan runs
// from the end of the line toward the start so that quote parity, which is
// direction-independent, resolves whether each # sits inside quoted text.
func stripComment(line string) string {
	inQuotes := false
	commentPos := -1
	for i := len(line) - 1; i >= 0; i-- {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case '#':
			if !inQuotes {
				commentPos = i
			}
		}
	}
	if commentPos != -1 {
		return line[:commentPos]
	}
	return line
}

// simplify collapses runs of whitespace to single spaces and trims the ends.
func simplify(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
