package keytab

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key identifies a keyboard key. Printable keys carry their upper-cased
// rune value; named keys live in a private range above the Unicode space.
type Key int32

// keyBase is the start of the named-key range.
const keyBase Key = 0x0100_0000

const (
	// KeyNone represents no key.
	KeyNone Key = 0

	// KeyEscape is the Escape key.
	KeyEscape Key = keyBase + iota

	// KeyTab is the Tab key.
	KeyTab

	// KeyBackTab is Shift+Tab as reported by the terminal.
	KeyBackTab

	// KeyBackspace is the Backspace key.
	KeyBackspace

	// KeyReturn is the main Return key.
	KeyReturn

	// KeyEnter is the keypad Enter key.
	KeyEnter

	// KeyInsert is the Insert key.
	KeyInsert

	// KeyDelete is the Delete key.
	KeyDelete

	// KeyHome is the Home key.
	KeyHome

	// KeyEnd is the End key.
	KeyEnd

	// KeyPageUp is the Page Up key.
	KeyPageUp

	// KeyPageDown is the Page Down key.
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeySpace is the space bar.
	KeySpace

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
	KeyF13
	KeyF14
	KeyF15
	KeyF16

	// Other special keys
	KeyPrint
	KeyPause
	KeyMenu
	KeyHelp
)

// IsRune returns true if the key carries a printable character value.
func (k Key) IsRune() bool {
	return k > KeyNone && k < keyBase
}

// Rune returns the character value for printable keys, or 0.
func (k Key) Rune() rune {
	if !k.IsRune() {
		return 0
	}
	return rune(k)
}

// IsFunctionKey returns true if this is a function key (F1-F16).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF16
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// keyNames maps named keys to their canonical keytab names.
var keyNames = map[Key]string{
	KeyEscape:    "Esc",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyReturn:    "Return",
	KeyEnter:     "Enter",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeySpace:     "Space",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	KeyF13:       "F13",
	KeyF14:       "F14",
	KeyF15:       "F15",
	KeyF16:       "F16",
	KeyPrint:     "Print",
	KeyPause:     "Pause",
	KeyMenu:      "Menu",
	KeyHelp:      "Help",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k == KeyNone {
		return "None"
	}
	if k.IsRune() {
		return string(rune(k))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(0x%x)", int32(k))
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"tab":       KeyTab,
	"backtab":   KeyBackTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"return":    KeyReturn,
	"enter":     KeyEnter,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pgup":      KeyPageUp,
	"pageup":    KeyPageUp,
	"prior":     KeyPageUp,
	"pgdown":    KeyPageDown,
	"pagedown":  KeyPageDown,
	"next":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"space":     KeySpace,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
	"f13":       KeyF13,
	"f14":       KeyF14,
	"f15":       KeyF15,
	"f16":       KeyF16,
	"print":     KeyPrint,
	"pause":     KeyPause,
	"menu":      KeyMenu,
	"help":      KeyHelp,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Single letters and digits resolve to their upper-cased rune value.
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return Key(unicode.ToUpper(r))
		}
	}
	return KeyNone
}
