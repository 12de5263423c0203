// Package term bridges tcell key events to keyboard translator lookups.
package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keytab/internal/keytab"
)

// Lookup finds the translator entry matching a tcell key event while the
// terminal is in the given states. The second return is false when no
// entry matches.
func Lookup(ev *tcell.EventKey, states keytab.State, t *keytab.Translator) (keytab.Entry, bool) {
	key := TranslateKey(ev.Key(), ev.Rune())
	if key == keytab.KeyNone {
		return keytab.Entry{}, false
	}
	return t.FindEntry(key, TranslateModifiers(ev.Modifiers()), states)
}

// TranslateModifiers converts a tcell modifier mask to keytab modifiers.
func TranslateModifiers(m tcell.ModMask) keytab.Modifier {
	var result keytab.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(keytab.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(keytab.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(keytab.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(keytab.ModMeta)
	}
	return result
}

// TranslateKey converts a tcell key to a keytab key code. Letter and digit
// rune events map to their upper-cased character value; other runes map to
// KeyNone, since the binding grammar treats punctuation as item separators
// and such keys could never be named in a keytab file. Ctrl-letter chords
// map back to the letter they modify. Keys with no keytab equivalent map
// to KeyNone.
func TranslateKey(k tcell.Key, r rune) keytab.Key {
	switch k {
	case tcell.KeyRune:
		if r == ' ' {
			return keytab.KeySpace
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return keytab.KeyNone
		}
		return keytab.Key(unicode.ToUpper(r))
	case tcell.KeyEscape:
		return keytab.KeyEscape
	case tcell.KeyEnter:
		return keytab.KeyReturn
	case tcell.KeyTab:
		return keytab.KeyTab
	case tcell.KeyBacktab:
		return keytab.KeyBackTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return keytab.KeyBackspace
	case tcell.KeyDelete:
		return keytab.KeyDelete
	case tcell.KeyInsert:
		return keytab.KeyInsert
	case tcell.KeyHome:
		return keytab.KeyHome
	case tcell.KeyEnd:
		return keytab.KeyEnd
	case tcell.KeyPgUp:
		return keytab.KeyPageUp
	case tcell.KeyPgDn:
		return keytab.KeyPageDown
	case tcell.KeyUp:
		return keytab.KeyUp
	case tcell.KeyDown:
		return keytab.KeyDown
	case tcell.KeyLeft:
		return keytab.KeyLeft
	case tcell.KeyRight:
		return keytab.KeyRight
	case tcell.KeyF1:
		return keytab.KeyF1
	case tcell.KeyF2:
		return keytab.KeyF2
	case tcell.KeyF3:
		return keytab.KeyF3
	case tcell.KeyF4:
		return keytab.KeyF4
	case tcell.KeyF5:
		return keytab.KeyF5
	case tcell.KeyF6:
		return keytab.KeyF6
	case tcell.KeyF7:
		return keytab.KeyF7
	case tcell.KeyF8:
		return keytab.KeyF8
	case tcell.KeyF9:
		return keytab.KeyF9
	case tcell.KeyF10:
		return keytab.KeyF10
	case tcell.KeyF11:
		return keytab.KeyF11
	case tcell.KeyF12:
		return keytab.KeyF12
	case tcell.KeyF13:
		return keytab.KeyF13
	case tcell.KeyF14:
		return keytab.KeyF14
	case tcell.KeyF15:
		return keytab.KeyF15
	case tcell.KeyF16:
		return keytab.KeyF16
	}

	// tcell reports Ctrl-letter chords as dedicated key codes in the C0
	// range; recover the letter so translator entries like "key A+Ctrl"
	// can match.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return keytab.Key('A' + rune(k) - rune(tcell.KeyCtrlA))
	}
	if k == tcell.KeyCtrlSpace {
		return keytab.KeySpace
	}

	return keytab.KeyNone
}
