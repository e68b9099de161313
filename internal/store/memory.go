// Package store holds the persistence backends for the hydration ledger.
// Memory lives here; file and database backends are in subpackages.
package store

import (
	"sync"

	"github.com/Flyrell/hydromind/internal/entry"
)

// Memory keeps entries and settings in process memory. It is used for tests
// and dry runs.
type Memory struct {
	mu       sync.Mutex
	entries  []entry.Entry
	settings map[string]string
	saves    int
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{settings: make(map[string]string)}
}

func (m *Memory) LoadEntries() ([]entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entry.Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *Memory) SaveEntries(entries []entry.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make([]entry.Entry, len(entries))
	copy(m.entries, entries)
	m.saves++
	return nil
}

func (m *Memory) LoadSetting(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.settings[key]
	return v, ok, nil
}

func (m *Memory) SaveSetting(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
	return nil
}

// Saves returns how many times SaveEntries has been called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
