package ledger

import (
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
)

type sampleDrink struct {
	amount float64
	drink  entry.DrinkType
	hour   int
	minute int
}

var sampleToday = []sampleDrink{
	{350, entry.Water, 7, 30},
	{250, entry.Coffee, 9, 0},
	{400, entry.Water, 11, 15},
	{200, entry.Tea, 13, 30},
	{300, entry.Water, 15, 0},
	{250, entry.Sparkling, 16, 45},
}

// samplePastTotals are the raw daily volumes for 1..6 days ago.
var samplePastTotals = []float64{2200, 2600, 1800, 2500, 2100, 2400}

// samplePastSplit spreads a past day's volume over four drinks.
var samplePastSplit = []sampleDrink{
	{0.3, entry.Water, 8, 0},
	{0.25, entry.Coffee, 12, 30},
	{0.25, entry.Water, 15, 0},
	{0.2, entry.Tea, 18, 0},
}

// SeedSampleData fills an empty ledger with a week of demo entries and saves
// them. It does nothing and returns false when entries already exist.
func (l *Ledger) SeedSampleData() (bool, error) {
	now := l.now()
	loc := now.Location()
	today := keyOf(now, loc)

	// Oldest first so insertion order matches time order.
	var seeded []entry.Entry
	for offset := len(samplePastTotals) - 1; offset >= 0; offset-- {
		total := samplePastTotals[offset]
		day := today.addDays(-(offset + 1))
		for _, s := range samplePastSplit {
			ts := time.Date(day.year, day.month, day.day, s.hour, s.minute, 0, 0, loc)
			seeded = append(seeded, entry.New(total*s.amount, s.drink, ts))
		}
	}
	for _, s := range sampleToday {
		ts := time.Date(today.year, today.month, today.day, s.hour, s.minute, 0, 0, loc)
		seeded = append(seeded, entry.New(s.amount, s.drink, ts))
	}

	l.mu.Lock()
	if len(l.entries) > 0 {
		l.mu.Unlock()
		return false, nil
	}
	l.entries = seeded
	err := l.saveEntries()
	l.mu.Unlock()

	l.log.WithField("entries", len(seeded)).Info("sample data seeded")
	for _, e := range seeded {
		l.notify(Event{Kind: EntryAdded, Entry: e})
	}
	return true, err
}
