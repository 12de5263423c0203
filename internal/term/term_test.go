package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keytab/internal/keytab"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want keytab.Key
	}{
		{tcell.KeyUp, 0, keytab.KeyUp},
		{tcell.KeyDown, 0, keytab.KeyDown},
		{tcell.KeyHome, 0, keytab.KeyHome},
		{tcell.KeyPgUp, 0, keytab.KeyPageUp},
		{tcell.KeyEnter, 0, keytab.KeyReturn},
		{tcell.KeyBacktab, 0, keytab.KeyBackTab},
		{tcell.KeyBackspace2, 0, keytab.KeyBackspace},
		{tcell.KeyF5, 0, keytab.KeyF5},
		{tcell.KeyRune, 'a', keytab.Key('A')},
		{tcell.KeyRune, 'Z', keytab.Key('Z')},
		{tcell.KeyRune, '7', keytab.Key('7')},
		{tcell.KeyRune, ' ', keytab.KeySpace},
		// Punctuation runes cannot be named in a binding descriptor, so
		// they do not translate.
		{tcell.KeyRune, '[', keytab.KeyNone},
		{tcell.KeyRune, '+', keytab.KeyNone},
		{tcell.KeyCtrlA, 0, keytab.Key('A')},
		{tcell.KeyCtrlZ, 0, keytab.Key('Z')},
	}

	for _, tt := range tests {
		if got := TranslateKey(tt.key, tt.r); got != tt.want {
			t.Errorf("TranslateKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestTranslateModifiers(t *testing.T) {
	tests := []struct {
		mods tcell.ModMask
		want keytab.Modifier
	}{
		{tcell.ModNone, keytab.ModNone},
		{tcell.ModShift, keytab.ModShift},
		{tcell.ModCtrl | tcell.ModAlt, keytab.ModCtrl | keytab.ModAlt},
		{tcell.ModMeta, keytab.ModMeta},
	}

	for _, tt := range tests {
		if got := TranslateModifiers(tt.mods); got != tt.want {
			t.Errorf("TranslateModifiers(%v) = %v, want %v", tt.mods, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	doc := strings.Join([]string{
		`keyboard "Test"`,
		`key Up+Shift : scrollLineUp`,
		`key Up-Shift : "\E[A"`,
	}, "\n")
	tr := keytab.Load("test", strings.NewReader(doc), nil)

	ev := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift)
	entry, ok := Lookup(ev, keytab.StateNone, tr)
	if !ok {
		t.Fatal("Lookup returned no match")
	}
	if entry.Command() != keytab.CmdScrollLineUp {
		t.Errorf("Command() = %v, want CmdScrollLineUp", entry.Command())
	}

	ev = tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	entry, ok = Lookup(ev, keytab.StateNone, tr)
	if !ok {
		t.Fatal("Lookup returned no match for plain Up")
	}
	if string(entry.Text()) != `\E[A` {
		t.Errorf("Text() = %q, want %q", entry.Text(), `\E[A`)
	}

	ev = tcell.NewEventKey(tcell.KeyF9, 0, tcell.ModNone)
	if _, ok := Lookup(ev, keytab.StateNone, tr); ok {
		t.Error("Lookup matched an unbound key")
	}
}
