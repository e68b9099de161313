package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/spf13/cobra"
)

var settingsCmd = GroupCommand{
	Use:   "settings",
	Short: "View or change the daily goal, reminder interval and unit",
	Subcommands: []*cobra.Command{
		settingsGetCmd,
		settingsSetCmd,
		settingsListCmd,
	},
}.Build()

// setting binds a user-facing key to its getter and setter on the ledger.
type setting struct {
	get func(l *ledger.Ledger) string
	set func(l *ledger.Ledger, value string) error
}

var settingKeys = map[string]setting{
	"daily-goal": {
		get: func(l *ledger.Ledger) string { return l.DisplayAmount(l.DailyGoal()) },
		set: func(l *ledger.Ledger, value string) error {
			ml, err := entry.ParseAmount(value, l.Unit())
			if err != nil {
				return fmt.Errorf("%w: %w", ledger.ErrInvalidGoal, err)
			}
			return l.SetDailyGoal(ml)
		},
	},
	"reminder-interval": {
		get: func(l *ledger.Ledger) string { return fmt.Sprintf("%d min", l.ReminderInterval()) },
		set: func(l *ledger.Ledger, value string) error {
			minutes, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(value), "m"))
			if err != nil {
				return fmt.Errorf("invalid interval %q (expected minutes, e.g. 60)", value)
			}
			return l.SetReminderInterval(minutes)
		},
	},
	"unit": {
		get: func(l *ledger.Ledger) string { return string(l.Unit()) },
		set: func(l *ledger.Ledger, value string) error {
			u, err := entry.ParseUnit(value)
			if err != nil {
				return err
			}
			return l.SetUnit(u)
		},
	},
}

func settingNames() []string {
	names := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func lookupSetting(key string) (setting, error) {
	s, ok := settingKeys[strings.ToLower(key)]
	if !ok {
		return setting{}, fmt.Errorf("unknown setting '%s' (expected one of %s)", key, strings.Join(settingNames(), ", "))
	}
	return s, nil
}

var settingsGetCmd = LeafCommand{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runSettingsGet(cmd, l, args[0])
		})
	},
}.Build()

func runSettingsGet(cmd *cobra.Command, l *ledger.Ledger, key string) error {
	s, err := lookupSetting(key)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.get(l))
	return nil
}

var settingsSetCmd = LeafCommand{
	Use:     "set <key> <value>",
	Short:   "Change one setting",
	Example: "  hydromind settings set daily-goal 2000\n  hydromind settings set unit oz\n  hydromind settings set reminder-interval 90",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runSettingsSet(cmd, l, args[0], args[1])
		})
	},
}.Build()

func runSettingsSet(cmd *cobra.Command, l *ledger.Ledger, key, value string) error {
	s, err := lookupSetting(key)
	if err != nil {
		return err
	}
	if err := s.set(l, value); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", strings.ToLower(key), Primary(s.get(l)))
	return nil
}

var settingsListCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print every setting",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runSettingsList(cmd, l)
		})
	},
}.Build()

func runSettingsList(cmd *cobra.Command, l *ledger.Ledger) error {
	w := cmd.OutOrStdout()
	for _, name := range settingNames() {
		_, _ = fmt.Fprintf(w, "%s %s\n", padRight(name, 18), Primary(settingKeys[name].get(l)))
	}
	return nil
}
