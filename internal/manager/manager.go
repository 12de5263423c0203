// Package manager locates and loads keyboard translators from .keytab
// files on disk.
//
// Translators are discovered across a list of search paths and loaded
// lazily by name. Loaded translators are cached; an optional file watcher
// invalidates cache entries when the underlying files change.
package manager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keytab/internal/keytab"
	"github.com/dshills/keytab/internal/logging"
)

// DefaultTranslatorName is the translator used when no other is requested.
const DefaultTranslatorName = "default"

// keytabExt is the file extension of translator files.
const keytabExt = ".keytab"

// Manager finds and caches keyboard translators.
type Manager struct {
	mu          sync.RWMutex
	searchPaths []string
	files       map[string]string // translator name -> file path
	translators map[string]*keytab.Translator
	scanned     bool

	log     *logging.Logger
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates a manager searching the given directories.
func New(log *logging.Logger, searchPaths ...string) *Manager {
	if log == nil {
		log = logging.NullLogger
	}
	return &Manager{
		searchPaths: searchPaths,
		files:       make(map[string]string),
		translators: make(map[string]*keytab.Translator),
		log:         log.WithComponent("manager"),
	}
}

// AddSearchPath adds a directory to search for keytab files. Adding a path
// forces a rescan on the next lookup.
func (m *Manager) AddSearchPath(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchPaths = append(m.searchPaths, path)
	m.scanned = false
}

// TranslatorNames returns the names of all available translators.
func (m *Manager) TranslatorNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scanLocked()

	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	return names
}

// Translator returns the translator with the given name, loading it on
// first use.
func (m *Manager) Translator(name string) (*keytab.Translator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.translatorLocked(name)
}

// DefaultTranslator returns the translator named "default", or any
// available translator if there is none.
func (m *Manager) DefaultTranslator() (*keytab.Translator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.translatorLocked(DefaultTranslatorName)
	if err == nil {
		return t, nil
	}

	m.scanLocked()
	for name := range m.files {
		return m.translatorLocked(name)
	}
	return nil, err
}

func (m *Manager) translatorLocked(name string) (*keytab.Translator, error) {
	if t, ok := m.translators[name]; ok {
		return t, nil
	}

	m.scanLocked()
	path, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("no keyboard translator named %q", name)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keytab file: %w", err)
	}
	defer f.Close()

	t := keytab.Load(name, f, m.log)
	m.translators[name] = t
	m.log.Debug("loaded translator %q from %s (%d entries)", name, path, len(t.Entries()))
	return t, nil
}

// scanLocked refreshes the name-to-path index. Caller must hold the lock.
func (m *Manager) scanLocked() {
	if m.scanned {
		return
	}

	m.files = make(map[string]string)
	for _, dir := range m.searchPaths {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+keytabExt))
		if err != nil {
			continue
		}
		for _, path := range matches {
			name := strings.TrimSuffix(filepath.Base(path), keytabExt)
			// Earlier search paths win.
			if _, exists := m.files[name]; !exists {
				m.files[name] = path
			}
		}
	}
	m.scanned = true
}

// Watch starts watching the search paths and drops cached translators when
// their files change, so the next lookup reloads them. It is a no-op if
// already watching.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	for _, dir := range m.searchPaths {
		if err := w.Add(dir); err != nil {
			m.log.Warn("cannot watch %s: %v", dir, err)
		}
	}

	m.watcher = w
	m.done = make(chan struct{})
	m.wg.Add(1)
	go m.watchLoop(w)
	return nil
}

func (m *Manager) watchLoop(w *fsnotify.Watcher) {
	defer m.wg.Done()
	for {
		select {
		case <-m.done:
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != keytabExt {
				continue
			}
			name := strings.TrimSuffix(filepath.Base(event.Name), keytabExt)
			m.mu.Lock()
			delete(m.translators, name)
			m.scanned = false
			m.mu.Unlock()
			m.log.Debug("keytab file changed, invalidated %q", name)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			m.log.Warn("watch error: %v", err)
		}
	}
}

// Close stops the watcher, if running.
func (m *Manager) Close() error {
	m.mu.Lock()
	w := m.watcher
	done := m.done
	m.watcher = nil
	m.done = nil
	m.mu.Unlock()

	if w == nil {
		return nil
	}
	close(done)
	err := w.Close()
	m.wg.Wait()
	return err
}
