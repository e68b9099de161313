// Package jsonfile stores the ledger as JSON files in a data directory.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Flyrell/hydromind/internal/entry"
)

const (
	entriesFile  = "entries.json"
	settingsFile = "settings.json"
)

// Store keeps entries in entries.json and settings in settings.json.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New returns a Store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// EntriesPath returns the path of the entries file.
func (s *Store) EntriesPath() string {
	return filepath.Join(s.dir, entriesFile)
}

// SettingsPath returns the path of the settings file.
func (s *Store) SettingsPath() string {
	return filepath.Join(s.dir, settingsFile)
}

// LoadEntries reads all entries. A missing file yields no entries.
func (s *Store) LoadEntries() ([]entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.EntriesPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", entriesFile, err)
	}
	return entries, nil
}

// SaveEntries replaces the entries file with entries.
func (s *Store) SaveEntries(entries []entry.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries == nil {
		entries = []entry.Entry{}
	}
	return s.write(s.EntriesPath(), entries)
}

// LoadSetting returns the stored value for key, if any.
func (s *Store) LoadSetting(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.readSettings()
	if err != nil {
		return "", false, err
	}
	v, ok := settings[key]
	return v, ok, nil
}

// SaveSetting stores value under key, leaving other settings untouched.
func (s *Store) SaveSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.readSettings()
	if err != nil {
		// An unreadable file is replaced rather than blocking every write.
		settings = make(map[string]string)
	}
	settings[key] = value
	return s.write(s.SettingsPath(), settings)
}

func (s *Store) readSettings() (map[string]string, error) {
	settings := make(map[string]string)

	data, err := os.ReadFile(s.SettingsPath())
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("decode %s: %w", settingsFile, err)
	}
	return settings, nil
}

// write marshals v into path through a temp file so a crash never leaves a
// half-written file behind.
func (s *Store) write(path string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
