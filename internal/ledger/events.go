package ledger

import (
	"slices"

	"github.com/Flyrell/hydromind/internal/entry"
)

// EventKind identifies what changed in the ledger.
type EventKind int

const (
	EntryAdded EventKind = iota + 1
	EntryRemoved
	SettingChanged
)

func (k EventKind) String() string {
	switch k {
	case EntryAdded:
		return "entry-added"
	case EntryRemoved:
		return "entry-removed"
	case SettingChanged:
		return "setting-changed"
	}
	return "unknown"
}

// Event describes a single mutation. Entry is set for entry events, Key for
// setting events.
type Event struct {
	Kind  EventKind
	Entry entry.Entry
	Key   string
}

// Subscribe registers fn to be called after every mutation, once the change
// has been applied and a save attempted. Observers run outside the ledger's
// lock and may query it. The returned func removes the observer.
func (l *Ledger) Subscribe(fn func(Event)) (unsubscribe func()) {
	l.mu.Lock()
	id := l.nextObsID
	l.nextObsID++
	l.observers[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.observers, id)
		l.mu.Unlock()
	}
}

func (l *Ledger) notify(ev Event) {
	l.mu.Lock()
	ids := make([]int, 0, len(l.observers))
	for id := range l.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, l.observers[id])
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
