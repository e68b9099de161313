// Package report builds monthly hydration summaries and renders them as PDF,
// JSON or YAML.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
)

// Line is one logged drink in a report.
type Line struct {
	ID        string          `json:"id" yaml:"id"`
	Time      time.Time       `json:"time" yaml:"time"`
	DrinkType entry.DrinkType `json:"drinkType" yaml:"drinkType"`
	Amount    float64         `json:"amount" yaml:"amount"`
	Hydration float64         `json:"hydration" yaml:"hydration"`
}

// Day groups a day's lines with its hydration-adjusted total.
type Day struct {
	Date    string  `json:"date" yaml:"date"`
	Lines   []Line  `json:"entries" yaml:"entries"`
	Total   float64 `json:"total" yaml:"total"`
	GoalMet bool    `json:"goalMet" yaml:"goalMet"`

	date time.Time
}

// DrinkTotal is the raw volume of one drink type over the month.
type DrinkTotal struct {
	DrinkType entry.DrinkType `json:"drinkType" yaml:"drinkType"`
	Amount    float64         `json:"amount" yaml:"amount"`
}

// Month is the full report for one calendar month. Volumes are in mL; Unit
// only affects rendering.
type Month struct {
	Period    string       `json:"period" yaml:"period"`
	Unit      entry.Unit   `json:"unit" yaml:"unit"`
	Goal      float64      `json:"goal" yaml:"goal"`
	Days      []Day        `json:"days" yaml:"days"`
	Total     float64      `json:"total" yaml:"total"`
	DaysMet   int          `json:"daysMet" yaml:"daysMet"`
	Breakdown []DrinkTotal `json:"breakdown" yaml:"breakdown"`

	year  int
	month time.Month
}

// Title returns e.g. "March 2026".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.month, m.year)
}

// ParseMonth parses "YYYY-MM". An empty string selects now's month.
func ParseMonth(s string, now time.Time) (int, time.Month, error) {
	if s == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}

// BuildMonth collects the entries that fall in year/month in loc, grouped by
// day in chronological order. Days without entries are omitted.
func BuildMonth(entries []entry.Entry, year int, month time.Month, loc *time.Location, goal float64, unit entry.Unit) Month {
	byDay := make(map[int][]Line)
	raw := make(map[entry.DrinkType]float64)

	for _, e := range entries {
		ts := e.Timestamp.In(loc)
		if ts.Year() != year || ts.Month() != month {
			continue
		}
		byDay[ts.Day()] = append(byDay[ts.Day()], Line{
			ID:        e.ID,
			Time:      ts,
			DrinkType: e.DrinkType,
			Amount:    e.Amount,
			Hydration: e.Hydration(),
		})
		raw[e.DrinkType] += e.Amount
	}

	m := Month{
		Period: fmt.Sprintf("%04d-%02d", year, int(month)),
		Unit:   unit,
		Goal:   goal,
		year:   year,
		month:  month,
	}

	last := time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
	for d := 1; d <= last; d++ {
		lines, ok := byDay[d]
		if !ok {
			continue
		}
		sort.SliceStable(lines, func(i, j int) bool {
			return lines[i].Time.Before(lines[j].Time)
		})

		day := Day{Lines: lines, date: time.Date(year, month, d, 12, 0, 0, 0, loc)}
		day.Date = day.date.Format("2006-01-02")
		for _, l := range lines {
			day.Total += l.Hydration
		}
		day.GoalMet = goal > 0 && day.Total >= goal
		if day.GoalMet {
			m.DaysMet++
		}
		m.Total += day.Total
		m.Days = append(m.Days, day)
	}

	for _, d := range entry.AllDrinkTypes() {
		if v, ok := raw[d]; ok {
			m.Breakdown = append(m.Breakdown, DrinkTotal{DrinkType: d, Amount: v})
		}
	}
	sort.SliceStable(m.Breakdown, func(i, j int) bool {
		return m.Breakdown[i].Amount > m.Breakdown[j].Amount
	})

	return m
}
