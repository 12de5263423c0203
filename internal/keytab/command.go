package keytab

import (
	"fmt"
	"strings"
)

// Command identifies a named action the emulator performs when a key
// binding fires, as an alternative to sending literal output bytes.
type Command int

const (
	// CmdNone indicates the binding has no associated command.
	CmdNone Command = iota

	// CmdErase sends the erase character configured for the terminal.
	CmdErase

	// CmdScrollPageUp scrolls the history view up one page.
	CmdScrollPageUp

	// CmdScrollPageDown scrolls the history view down one page.
	CmdScrollPageDown

	// CmdScrollLineUp scrolls the history view up one line.
	CmdScrollLineUp

	// CmdScrollLineDown scrolls the history view down one line.
	CmdScrollLineDown

	// CmdScrollUpToTop scrolls to the top of the history.
	CmdScrollUpToTop

	// CmdScrollDownToBottom scrolls to the bottom of the history.
	CmdScrollDownToBottom

	// CmdScrollPromptUp scrolls the history view up to the previous prompt.
	CmdScrollPromptUp

	// CmdScrollPromptDown scrolls the history view down to the next prompt.
	CmdScrollPromptDown
)

// String returns the canonical keytab name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return ""
	case CmdErase:
		return "Erase"
	case CmdScrollPageUp:
		return "ScrollPageUp"
	case CmdScrollPageDown:
		return "ScrollPageDown"
	case CmdScrollLineUp:
		return "ScrollLineUp"
	case CmdScrollLineDown:
		return "ScrollLineDown"
	case CmdScrollUpToTop:
		return "ScrollUpToTop"
	case CmdScrollDownToBottom:
		return "ScrollDownToBottom"
	case CmdScrollPromptUp:
		return "ScrollPromptUp"
	case CmdScrollPromptDown:
		return "ScrollPromptDown"
	default:
		return fmt.Sprintf("Command(%d)", c)
	}
}

// commandNameMap maps command names (lowercase) to Command values.
var commandNameMap = map[string]Command{
	"erase":              CmdErase,
	"scrollpageup":       CmdScrollPageUp,
	"scrollpagedown":     CmdScrollPageDown,
	"scrolllineup":       CmdScrollLineUp,
	"scrolllinedown":     CmdScrollLineDown,
	"scrolluptotop":      CmdScrollUpToTop,
	"scrolldowntobottom": CmdScrollDownToBottom,
	"scrollpromptup":     CmdScrollPromptUp,
	"scrollpromptdown":   CmdScrollPromptDown,
}

// CommandFromName returns the Command for a given name (case-insensitive)
// and whether the name is recognized.
func CommandFromName(name string) (Command, bool) {
	c, ok := commandNameMap[strings.ToLower(name)]
	if !ok {
		return CmdNone, false
	}
	return c, true
}
