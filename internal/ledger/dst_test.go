package ledger

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/Flyrell/hydromind/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Days on which clocks spring forward. Santiago skips 00:00-01:00, Berlin
// skips 02:00-03:00.
var springForward = []struct {
	name string
	zone string
	year int
	mon  time.Month
	day  int
}{
	{"midnight gap", "America/Santiago", 2024, time.September, 8},
	{"early morning gap", "Europe/Berlin", 2024, time.March, 31},
}

func zonedLedger(t *testing.T, now time.Time) *Ledger {
	t.Helper()
	l := New(store.NewMemory(), Options{Now: func() time.Time { return now }})
	require.NoError(t, l.SetDailyGoal(2000))
	return l
}

func TestWeeklyDataAcrossSpringForward(t *testing.T) {
	for _, tt := range springForward {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.zone)
			require.NoError(t, err)
			now := time.Date(tt.year, tt.mon, tt.day+2, 12, 0, 0, 0, loc)
			l := zonedLedger(t, now)
			mustAddAt(t, l, 500, entry.Water, now)

			data := l.WeeklyData()
			require.Len(t, data, 7)

			labels := make(map[string]bool)
			for i, d := range data {
				want := time.Date(tt.year, tt.mon, tt.day-4+i, 12, 0, 0, 0, loc)
				assert.Equal(t, want.Format("2006-01-02"), d.Date.Format("2006-01-02"))
				assert.Equal(t, want.Format("Mon"), d.Label)
				labels[d.Label] = true
			}
			assert.Len(t, labels, 7)
			assert.Equal(t, 500.0, data[6].Total)
		})
	}
}

func TestStreakWalksThroughSpringForward(t *testing.T) {
	for _, tt := range springForward {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.zone)
			require.NoError(t, err)
			day := func(offset int) time.Time {
				return time.Date(tt.year, tt.mon, tt.day+offset, 12, 0, 0, 0, loc)
			}
			l := zonedLedger(t, day(2))

			// The transition day itself is missed.
			mustAddAt(t, l, 2000, entry.Water, day(-1))
			mustAddAt(t, l, 2000, entry.Water, day(1))
			mustAddAt(t, l, 2000, entry.Water, day(2))

			assert.Equal(t, 2, l.CurrentStreak())
			assert.Equal(t, 2, l.Stats(Week).Streak)
		})
	}
}

func TestTodayOnSpringForwardDay(t *testing.T) {
	for _, tt := range springForward {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.zone)
			require.NoError(t, err)
			now := time.Date(tt.year, tt.mon, tt.day, 12, 0, 0, 0, loc)
			l := zonedLedger(t, now)

			mustAddAt(t, l, 400, entry.Water, time.Date(tt.year, tt.mon, tt.day-1, 23, 30, 0, 0, loc))
			mustAddAt(t, l, 1000, entry.Water, time.Date(tt.year, tt.mon, tt.day, 1, 30, 0, 0, loc))
			mustAddAt(t, l, 2000, entry.Water, time.Date(tt.year, tt.mon, tt.day, 10, 0, 0, 0, loc))

			assert.Len(t, l.TodayEntries(), 2)
			assert.Equal(t, 3000.0, l.TodayTotal())
			assert.Equal(t, 1, l.CurrentStreak())

			data := l.WeeklyData()
			require.Len(t, data, 7)
			assert.Equal(t, now.Format("2006-01-02"), data[6].Date.Format("2006-01-02"))
			assert.Equal(t, 3000.0, data[6].Total)
			assert.Equal(t, 400.0, data[5].Total)
		})
	}
}

func TestDayKeyAddDaysCrossesMonthAndYear(t *testing.T) {
	assert.Equal(t, dayKey{2024, time.March, 1}, dayKey{2024, time.February, 29}.addDays(1))
	assert.Equal(t, dayKey{2023, time.December, 31}, dayKey{2024, time.January, 1}.addDays(-1))
	assert.True(t, dayKey{2024, time.March, 1}.after(dayKey{2024, time.February, 29}))
	assert.False(t, dayKey{2024, time.March, 1}.after(dayKey{2024, time.March, 1}))
}

func TestSeedSampleDataAcrossSpringForward(t *testing.T) {
	for _, tt := range springForward {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.zone)
			require.NoError(t, err)
			l := zonedLedger(t, time.Date(tt.year, tt.mon, tt.day+1, 12, 0, 0, 0, loc))

			seeded, err := l.SeedSampleData()
			require.NoError(t, err)
			require.True(t, seeded)

			for _, d := range l.WeeklyData() {
				assert.Positive(t, d.Total, d.Date.Format("2006-01-02"))
			}
		})
	}
}
