// Package reminder computes when the next "time to drink" nudges fall, given
// the reminder interval and the hours of the day reminders are allowed in.
package reminder

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var ErrInvalidWindow = errors.New("reminder window must start before it ends")

// Window bounds the part of the day reminders may fire in. Both ends are
// inclusive.
type Window struct {
	From TimeOfDay
	To   TimeOfDay
}

// DefaultWindow is 08:00 to 22:00.
func DefaultWindow() Window {
	return Window{From: TimeOfDay{Hour: 8}, To: TimeOfDay{Hour: 22}}
}

// Validate reports ErrInvalidWindow when From is not before To.
func (w Window) Validate() error {
	if !w.From.Before(w.To) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidWindow, w.From, w.To)
	}
	return nil
}

func (w Window) String() string {
	return w.From.String() + "-" + w.To.String()
}

// rule returns the reminder recurrence for the window on day.
func (w Window) rule(day time.Time, interval int) (*rrule.RRule, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("reminder interval must be positive, got %d", interval)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return rrule.NewRRule(rrule.ROption{
		Freq:     rrule.MINUTELY,
		Interval: interval,
		Dtstart:  w.From.On(day),
		Until:    w.To.On(day),
	})
}

// Upcoming returns the remaining reminder slots of now's day, starting at
// now (inclusive). Slots are anchored at the window start every interval
// minutes. A limit of zero or less returns every remaining slot.
func Upcoming(now time.Time, interval int, w Window, limit int) ([]time.Time, error) {
	r, err := w.rule(now, interval)
	if err != nil {
		return nil, err
	}

	slots := r.Between(now.Truncate(time.Second), w.To.On(now), true)
	if limit > 0 && len(slots) > limit {
		slots = slots[:limit]
	}
	return slots, nil
}

// Next returns the next reminder slot at or after now, rolling over to the
// following day's window start when today's slots are used up.
func Next(now time.Time, interval int, w Window) (time.Time, error) {
	slots, err := Upcoming(now, interval, w, 1)
	if err != nil {
		return time.Time{}, err
	}
	if len(slots) > 0 {
		return slots[0], nil
	}
	return w.From.On(now.AddDate(0, 0, 1)), nil
}
