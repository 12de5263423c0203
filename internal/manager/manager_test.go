package manager

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/dshills/keytab/internal/keytab"
)

func writeKeytab(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name+".keytab")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestTranslatorNames(t *testing.T) {
	dir := t.TempDir()
	writeKeytab(t, dir, "default", "keyboard \"Default\"\nkey Up : scrollLineUp\n")
	writeKeytab(t, dir, "linux", "keyboard \"Linux console\"\n")

	m := New(nil, dir)
	names := m.TranslatorNames()
	sort.Strings(names)

	want := []string{"default", "linux"}
	if len(names) != len(want) {
		t.Fatalf("TranslatorNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("TranslatorNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestTranslatorLoadsLazily(t *testing.T) {
	dir := t.TempDir()
	writeKeytab(t, dir, "default", "keyboard \"Default\"\nkey Up+Shift : scrollLineUp\n")

	m := New(nil, dir)

	tr, err := m.Translator("default")
	if err != nil {
		t.Fatalf("Translator() error = %v", err)
	}
	if tr.Description() != "Default" {
		t.Errorf("Description() = %q, want %q", tr.Description(), "Default")
	}
	if len(tr.Entries()) != 1 {
		t.Fatalf("len(Entries()) = %d, want 1", len(tr.Entries()))
	}

	entry, ok := tr.FindEntry(keytab.KeyUp, keytab.ModShift, keytab.StateNone)
	if !ok {
		t.Fatal("FindEntry returned no match")
	}
	if entry.Command() != keytab.CmdScrollLineUp {
		t.Errorf("Command() = %v, want CmdScrollLineUp", entry.Command())
	}

	// Second lookup returns the cached instance.
	again, err := m.Translator("default")
	if err != nil {
		t.Fatalf("Translator() error = %v", err)
	}
	if again != tr {
		t.Error("second Translator() call did not return the cached translator")
	}
}

func TestTranslatorUnknownName(t *testing.T) {
	m := New(nil, t.TempDir())
	if _, err := m.Translator("missing"); err == nil {
		t.Error("Translator(missing) error = nil, want error")
	}
}

func TestDefaultTranslatorFallback(t *testing.T) {
	dir := t.TempDir()
	writeKeytab(t, dir, "solaris", "keyboard \"Solaris\"\n")

	m := New(nil, dir)
	tr, err := m.DefaultTranslator()
	if err != nil {
		t.Fatalf("DefaultTranslator() error = %v", err)
	}
	if tr.Name() != "solaris" {
		t.Errorf("Name() = %q, want fallback %q", tr.Name(), "solaris")
	}
}

func TestSearchPathPrecedence(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeKeytab(t, first, "default", "keyboard \"User\"\n")
	writeKeytab(t, second, "default", "keyboard \"System\"\n")

	m := New(nil, first, second)
	tr, err := m.Translator("default")
	if err != nil {
		t.Fatalf("Translator() error = %v", err)
	}
	if tr.Description() != "User" {
		t.Errorf("Description() = %q, want earlier search path to win", tr.Description())
	}
}

func TestWatchInvalidatesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeKeytab(t, dir, "default", "keyboard \"Before\"\nkey Up : scrollLineUp\n")

	m := New(nil, dir)
	if err := m.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer m.Close()

	tr, err := m.Translator("default")
	if err != nil {
		t.Fatalf("Translator() error = %v", err)
	}
	if tr.Description() != "Before" {
		t.Fatalf("Description() = %q, want %q", tr.Description(), "Before")
	}

	if err := os.WriteFile(path, []byte("keyboard \"After\"\nkey Down : scrollLineDown\n"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	// Invalidation is asynchronous; poll until a lookup reloads the file.
	deadline := time.Now().Add(2 * time.Second)
	for {
		reloaded, err := m.Translator("default")
		if err != nil {
			t.Fatalf("Translator() error = %v", err)
		}
		if reloaded.Description() == "After" {
			if _, ok := reloaded.FindEntry(keytab.KeyDown, keytab.ModNone, keytab.StateNone); !ok {
				t.Error("reloaded translator missing rewritten entry")
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Description() = %q after rewrite, want %q", reloaded.Description(), "After")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatchIdempotent(t *testing.T) {
	m := New(nil, t.TempDir())
	if err := m.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := m.Watch(); err != nil {
		t.Errorf("second Watch() error = %v, want nil no-op", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Close again should be safe.
	if err := m.Close(); err != nil {
		t.Errorf("Close() again error = %v", err)
	}
}

func TestAddSearchPathRescans(t *testing.T) {
	m := New(nil)
	if names := m.TranslatorNames(); len(names) != 0 {
		t.Fatalf("TranslatorNames() = %v, want none", names)
	}

	dir := t.TempDir()
	writeKeytab(t, dir, "default", "keyboard \"Default\"\n")
	m.AddSearchPath(dir)

	if names := m.TranslatorNames(); len(names) != 1 {
		t.Errorf("TranslatorNames() = %v, want one entry", names)
	}
}
