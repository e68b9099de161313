package ledger

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDailyGoal        = 2500.0
	DefaultReminderInterval = 60
	DefaultUnit             = entry.Milliliters
)

// Settings holds the user's configurable values.
type Settings struct {
	DailyGoal        float64    // mL
	ReminderInterval int        // minutes
	Unit             entry.Unit // display unit
}

// DefaultSettings returns the settings used when nothing has been saved.
func DefaultSettings() Settings {
	return Settings{
		DailyGoal:        DefaultDailyGoal,
		ReminderInterval: DefaultReminderInterval,
		Unit:             DefaultUnit,
	}
}

// loadSettings reads each setting independently, falling back to its default
// when the key is absent, unreadable or out of range.
func loadSettings(st Store, log *logrus.Entry) Settings {
	s := DefaultSettings()

	if raw, ok := loadSetting(st, log, KeyDailyGoal); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && validGoal(v) {
			s.DailyGoal = v
		} else {
			log.WithField("key", KeyDailyGoal).WithField("value", raw).Warn("ignoring invalid stored setting")
		}
	}

	if raw, ok := loadSetting(st, log, KeyReminderInterval); ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			s.ReminderInterval = v
		} else {
			log.WithField("key", KeyReminderInterval).WithField("value", raw).Warn("ignoring invalid stored setting")
		}
	}

	if raw, ok := loadSetting(st, log, KeyUnit); ok {
		if u := entry.Unit(raw); u.Valid() {
			s.Unit = u
		} else {
			log.WithField("key", KeyUnit).WithField("value", raw).Warn("ignoring invalid stored setting")
		}
	}

	return s
}

func loadSetting(st Store, log *logrus.Entry, key string) (string, bool) {
	raw, ok, err := st.LoadSetting(key)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("reading setting failed, using default")
		return "", false
	}
	return raw, ok
}

func validGoal(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Settings returns a copy of the current settings.
func (l *Ledger) Settings() Settings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings
}

func (l *Ledger) DailyGoal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings.DailyGoal
}

func (l *Ledger) ReminderInterval() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings.ReminderInterval
}

func (l *Ledger) Unit() entry.Unit {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings.Unit
}

// SetDailyGoal updates the daily goal in mL and persists it.
func (l *Ledger) SetDailyGoal(ml float64) error {
	if !validGoal(ml) {
		return fmt.Errorf("%w: got %v", ErrInvalidGoal, ml)
	}
	l.mu.Lock()
	l.settings.DailyGoal = ml
	l.mu.Unlock()
	return l.saveSetting(KeyDailyGoal, strconv.FormatFloat(ml, 'f', -1, 64))
}

// SetReminderInterval updates the reminder interval in minutes and persists it.
func (l *Ledger) SetReminderInterval(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidInterval, minutes)
	}
	l.mu.Lock()
	l.settings.ReminderInterval = minutes
	l.mu.Unlock()
	return l.saveSetting(KeyReminderInterval, strconv.Itoa(minutes))
}

// SetUnit updates the display unit and persists it.
func (l *Ledger) SetUnit(u entry.Unit) error {
	if !u.Valid() {
		return fmt.Errorf("%w %q", ErrInvalidUnit, u)
	}
	l.mu.Lock()
	l.settings.Unit = u
	l.mu.Unlock()
	return l.saveSetting(KeyUnit, string(u))
}

func (l *Ledger) saveSetting(key, value string) error {
	l.mu.Lock()
	err := l.store.SaveSetting(key, value)
	l.mu.Unlock()

	log := l.log.WithField("key", key).WithField("value", value)
	if err != nil {
		log.WithError(err).Warn("saving setting failed")
		err = fmt.Errorf("%w: %w", ErrPersistence, err)
	} else {
		log.Debug("setting changed")
	}
	l.notify(Event{Kind: SettingChanged, Key: key})
	return err
}

// DisplayAmount formats a volume in mL using the configured unit.
func (l *Ledger) DisplayAmount(ml float64) string {
	return entry.FormatAmount(ml, l.Unit())
}
