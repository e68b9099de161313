package ledger

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/sirupsen/logrus"
)

// Options configures a Ledger. Zero values select the defaults.
type Options struct {
	Now    func() time.Time
	Logger *logrus.Logger
}

// Ledger owns the logged entries and the user's settings and derives every
// hydration metric from them on demand.
type Ledger struct {
	mu       sync.Mutex
	store    Store
	now      func() time.Time
	log      *logrus.Entry
	entries  []entry.Entry
	settings Settings

	observers map[int]func(Event)
	nextObsID int
}

// New builds a Ledger backed by st and loads its persisted state. Unreadable
// or malformed data is logged and treated as empty state.
func New(st Store, opts Options) *Ledger {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	l := &Ledger{
		store:     st,
		now:       now,
		log:       logger.WithField("component", "ledger"),
		observers: make(map[int]func(Event)),
	}
	l.load()
	return l
}

func (l *Ledger) load() {
	entries, err := l.store.LoadEntries()
	if err != nil {
		l.log.WithError(err).Warn("stored entries unreadable, starting empty")
		entries = nil
	}
	l.entries = dedupe(entries)
	l.settings = loadSettings(l.store, l.log)
	l.log.WithField("entries", len(l.entries)).Debug("ledger loaded")
}

// dedupe drops entries whose ID was already seen, keeping the first.
func dedupe(entries []entry.Entry) []entry.Entry {
	seen := make(map[string]bool, len(entries))
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

// Entries returns a copy of all entries in insertion order.
func (l *Ledger) Entries() []entry.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

func (l *Ledger) snapshot() []entry.Entry {
	out := make([]entry.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// AddEntry logs amount mL of drink at the current time.
func (l *Ledger) AddEntry(amount float64, drink entry.DrinkType) (entry.Entry, error) {
	return l.AddEntryAt(amount, drink, l.now())
}

// AddEntryAt logs amount mL of drink at ts. An empty drink defaults to water.
// The returned error wraps ErrPersistence when the entry was recorded but
// could not be saved.
func (l *Ledger) AddEntryAt(amount float64, drink entry.DrinkType, ts time.Time) (entry.Entry, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return entry.Entry{}, fmt.Errorf("%w: got %v", ErrInvalidAmount, amount)
	}
	if drink == "" {
		drink = entry.Water
	}
	if !drink.Valid() {
		return entry.Entry{}, fmt.Errorf("%w %q", entry.ErrUnknownDrinkType, drink)
	}

	e := entry.New(amount, drink, ts)

	l.mu.Lock()
	l.entries = append(l.entries, e)
	err := l.saveEntries()
	l.mu.Unlock()

	l.log.WithField("entry_id", e.ID).
		WithField("drink", string(e.DrinkType)).
		WithField("amount", e.Amount).
		Debug("entry added")
	l.notify(Event{Kind: EntryAdded, Entry: e})
	return e, err
}

// RemoveEntry deletes the entry with the given ID. It reports whether an
// entry was removed; an unknown ID is not an error.
func (l *Ledger) RemoveEntry(id string) (bool, error) {
	l.mu.Lock()
	var removed entry.Entry
	found := false
	kept := make([]entry.Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.ID == id {
			removed = e
			found = true
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	err := l.saveEntries()
	l.mu.Unlock()

	if !found {
		return false, err
	}
	l.log.WithField("entry_id", id).Debug("entry removed")
	l.notify(Event{Kind: EntryRemoved, Entry: removed})
	return true, err
}

// FindEntry returns the entry with the given ID.
func (l *Ledger) FindEntry(id string) (entry.Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return entry.Entry{}, false
}

// saveEntries must be called with l.mu held.
func (l *Ledger) saveEntries() error {
	if err := l.store.SaveEntries(l.snapshot()); err != nil {
		l.log.WithError(err).WithField("entries", len(l.entries)).Warn("saving entries failed")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}
