package reminder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// String returns the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes() < other.minutes()
}

// On places t on the calendar day of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

var (
	// 9:30am, 9.30pm
	clock12 = regexp.MustCompile(`^(\d{1,2})[:.](\d{2})\s*(am|pm)$`)
	// 9am, 2 pm
	hour12 = regexp.MustCompile(`^(\d{1,2})\s*(am|pm)$`)
	// 14:00, 09.30
	clock24 = regexp.MustCompile(`^(\d{1,2})[:.](\d{2})$`)
)

// ParseTimeOfDay accepts "9:30am", "9.30am", "9am", "14:00" and "14.00".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if m := clock12.FindStringSubmatch(s); m != nil {
		return twelveHour(m[1], m[2], m[3])
	}
	if m := hour12.FindStringSubmatch(s); m != nil {
		return twelveHour(m[1], "0", m[2])
	}
	if m := clock24.FindStringSubmatch(s); m != nil {
		return twentyFourHour(m[1], m[2])
	}
	return TimeOfDay{}, fmt.Errorf("unrecognized time format %q", s)
}

func twelveHour(hourStr, minStr, meridiem string) (TimeOfDay, error) {
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minStr)

	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range for 12-hour format", hour)
	}
	if minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}

	hour %= 12
	if meridiem == "pm" {
		hour += 12
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func twentyFourHour(hourStr, minStr string) (TimeOfDay, error) {
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minStr)

	if hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}
