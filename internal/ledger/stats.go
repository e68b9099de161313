package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
)

// Timeframe selects the window of entries a Stats summary covers.
type Timeframe int

const (
	Week Timeframe = iota
	Month
	AllTime
)

func (tf Timeframe) String() string {
	switch tf {
	case Week:
		return "week"
	case Month:
		return "month"
	}
	return "all"
}

// ParseTimeframe resolves "week", "month" or "all".
func ParseTimeframe(s string) (Timeframe, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "w":
		return Week, nil
	case "month", "m":
		return Month, nil
	case "all", "all-time", "a":
		return AllTime, nil
	}
	return 0, fmt.Errorf("invalid timeframe %q (expected week, month or all)", s)
}

// DrinkTotal is the raw volume logged for one drink type.
type DrinkTotal struct {
	DrinkType entry.DrinkType
	Amount    float64 // mL, not hydration-adjusted
}

const recentLimit = 10

// Stats summarizes the entries of a timeframe.
type Stats struct {
	Timeframe    Timeframe
	Entries      int
	Days         int     // distinct days with at least one entry
	AverageDaily float64 // adjusted mL per logged day
	BestDay      float64 // best adjusted day total across all history
	Streak       int
	Breakdown    []DrinkTotal  // largest first
	Recent       []entry.Entry // newest first
}

func (l *Ledger) cutoff(tf Timeframe, now time.Time) (time.Time, bool) {
	switch tf {
	case Week:
		return now.AddDate(0, 0, -7), true
	case Month:
		return now.AddDate(0, -1, 0), true
	}
	return time.Time{}, false
}

// Stats computes the history summary for tf.
func (l *Ledger) Stats(tf Timeframe) Stats {
	now := l.now()
	loc := now.Location()

	l.mu.Lock()
	all := l.snapshot()
	goal := l.settings.DailyGoal
	l.mu.Unlock()

	filtered := all
	if from, ok := l.cutoff(tf, now); ok {
		filtered = nil
		for _, e := range all {
			if !e.Timestamp.Before(from) {
				filtered = append(filtered, e)
			}
		}
	}

	st := Stats{Timeframe: tf, Entries: len(filtered)}

	periodTotals := dailyTotals(filtered, loc)
	st.Days = len(periodTotals)
	if st.Days > 0 {
		sum := 0.0
		for _, v := range periodTotals {
			sum += v
		}
		st.AverageDaily = sum / float64(st.Days)
	}

	allTotals := dailyTotals(all, loc)
	for _, v := range allTotals {
		st.BestDay = max(st.BestDay, v)
	}
	st.Streak = streakFrom(allTotals, goal, keyOf(now, loc))
	st.Breakdown = breakdown(filtered)

	n := min(len(filtered), recentLimit)
	st.Recent = make([]entry.Entry, 0, n)
	for i := len(filtered) - 1; i >= len(filtered)-n; i-- {
		st.Recent = append(st.Recent, filtered[i])
	}

	return st
}

// breakdown sums raw volume per drink type, largest first. Ties keep the
// drink type declaration order.
func breakdown(entries []entry.Entry) []DrinkTotal {
	sums := make(map[entry.DrinkType]float64)
	for _, e := range entries {
		sums[e.DrinkType] += e.Amount
	}

	var out []DrinkTotal
	for _, d := range entry.AllDrinkTypes() {
		if v, ok := sums[d]; ok {
			out = append(out, DrinkTotal{DrinkType: d, Amount: v})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}
