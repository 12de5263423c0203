// Package keytab parses keyboard translation tables in the .keytab format.
//
// A keytab file maps key presses to either a literal byte sequence sent to
// the terminal or a named command handled by the emulator. Each line of a
// file is one of:
//
//	keyboard "name"
//	key KeySequence : "characters"
//	key KeySequence : CommandName
//
// A KeySequence begins with the name of a key and is followed by keyboard
// modifiers and terminal state flags, each prefixed with + or - to indicate
// whether it must be present or absent. Modifiers and flags that are not
// mentioned are unconstrained. The sequence may contain whitespace.
//
// For example:
//
//	key Up+Shift           : scrollLineUp
//	key PgDown -Shift      : "\E[6~"
//	key Home-AnyMod-AppCuKeys : "\E[H"
//
// Comments start with # (outside of quoted text) and run to end of line.
// Lines containing only whitespace are ignored.
//
// Parsing is best-effort: unrecognized lines, items, and command names are
// reported to the diagnostic logger and skipped; there is no error path the
// caller must branch on. The only end-of-input signal is Reader.HasNext
// turning false.
package keytab
