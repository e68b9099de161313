package ledger

import (
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
)

// DayTotal is the hydration-adjusted total for one calendar day.
type DayTotal struct {
	Label string    // short weekday name, e.g. "Mon"
	Date  time.Time // noon of the local day
	Total float64 // mL, not unit-converted
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time, loc *time.Location) dayKey {
	y, m, d := t.In(loc).Date()
	return dayKey{y, m, d}
}

// addDays steps by calendar days. The arithmetic runs in UTC, where every
// day has 24 hours.
func (k dayKey) addDays(n int) dayKey {
	return keyOf(time.Date(k.year, k.month, k.day+n, 12, 0, 0, 0, time.UTC), time.UTC)
}

// noon returns a representative instant of the day in loc. Midnight can fall
// into a DST gap; noon never does.
func (k dayKey) noon(loc *time.Location) time.Time {
	return time.Date(k.year, k.month, k.day, 12, 0, 0, 0, loc)
}

func (k dayKey) after(other dayKey) bool {
	if k.year != other.year {
		return k.year > other.year
	}
	if k.month != other.month {
		return k.month > other.month
	}
	return k.day > other.day
}

// dailyTotals buckets the hydration-adjusted volume of entries by local day.
func dailyTotals(entries []entry.Entry, loc *time.Location) map[dayKey]float64 {
	totals := make(map[dayKey]float64)
	for _, e := range entries {
		totals[keyOf(e.Timestamp, loc)] += e.Hydration()
	}
	return totals
}

// TodayEntries returns the entries logged during the current local calendar
// day, in insertion order.
func (l *Ledger) TodayEntries() []entry.Entry {
	now := l.now()
	today := keyOf(now, now.Location())

	l.mu.Lock()
	defer l.mu.Unlock()

	var out []entry.Entry
	for _, e := range l.entries {
		if keyOf(e.Timestamp, now.Location()) == today {
			out = append(out, e)
		}
	}
	return out
}

// TodayTotal returns today's hydration-adjusted total in mL.
func (l *Ledger) TodayTotal() float64 {
	total := 0.0
	for _, e := range l.TodayEntries() {
		total += e.Hydration()
	}
	return total
}

// TodayProgress returns TodayTotal as a fraction of the daily goal, clamped
// to 1.0.
func (l *Ledger) TodayProgress() float64 {
	return min(l.TodayTotal()/l.DailyGoal(), 1.0)
}

// CurrentStreak counts consecutive days meeting the daily goal, walking back
// from today. Today counts once its goal is met; until then the walk starts
// at yesterday so an unbroken run is not lost mid-day.
func (l *Ledger) CurrentStreak() int {
	now := l.now()
	loc := now.Location()

	l.mu.Lock()
	totals := dailyTotals(l.entries, loc)
	goal := l.settings.DailyGoal
	l.mu.Unlock()

	return streakFrom(totals, goal, keyOf(now, loc))
}

func streakFrom(totals map[dayKey]float64, goal float64, today dayKey) int {
	if goal <= 0 {
		return 0
	}
	streak := 0
	if totals[today] >= goal {
		streak = 1
	}
	for day := today.addDays(-1); totals[day] >= goal; day = day.addDays(-1) {
		streak++
	}
	return streak
}

// WeeklyData returns the seven days ending today, oldest first.
func (l *Ledger) WeeklyData() []DayTotal {
	now := l.now()
	loc := now.Location()
	today := keyOf(now, loc)
	return l.DailyTotals(today.addDays(-6).noon(loc), today.noon(loc))
}

// DailyTotals returns one DayTotal per local calendar day from the day of
// from through the day of to, oldest first. Days without entries report 0.
func (l *Ledger) DailyTotals(from, to time.Time) []DayTotal {
	loc := l.now().Location()

	l.mu.Lock()
	totals := dailyTotals(l.entries, loc)
	l.mu.Unlock()

	last := keyOf(to, loc)

	var out []DayTotal
	for day := keyOf(from, loc); !day.after(last); day = day.addDays(1) {
		noon := day.noon(loc)
		out = append(out, DayTotal{
			Label: noon.Format("Mon"),
			Date:  noon,
			Total: totals[day],
		})
	}
	return out
}
