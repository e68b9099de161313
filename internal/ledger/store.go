package ledger

import "github.com/Flyrell/hydromind/internal/entry"

// Setting keys used with Store.LoadSetting and Store.SaveSetting.
const (
	KeyDailyGoal        = "dailyGoal"
	KeyReminderInterval = "reminderInterval"
	KeyUnit             = "hydrationUnit"
)

// Store is the durable key-value storage a Ledger reads at startup and writes
// after every mutation.
type Store interface {
	// LoadEntries returns the persisted entries in insertion order, or an
	// empty slice when nothing has been stored yet.
	LoadEntries() ([]entry.Entry, error)
	SaveEntries(entries []entry.Entry) error

	// LoadSetting reports ok=false when key has never been saved.
	LoadSetting(key string) (value string, ok bool, err error)
	SaveSetting(key, value string) error
}
