package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/Flyrell/hydromind/internal/reminder"
	"github.com/spf13/cobra"
)

var addCmd = LeafCommand{
	Use:     "add [amount]",
	Aliases: []string{"drink"},
	Short:   "Log a drink",
	Example: "  hydromind add 250\n  hydromind add 8oz --drink coffee\n  hydromind add 1.5cups --date 2026-03-10 --at 9am",
	Args:    cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "drink", Shorthand: "d", Usage: "drink type: water, tea, coffee, juice, sparkling, milk (default: water)"},
		{Name: "date", Usage: "day the drink was had (YYYY-MM-DD, default: today)"},
		{Name: "at", Usage: "time of day (e.g. 9am, 14:30, default: now)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		drinkFlag, _ := cmd.Flags().GetString("drink")
		dateFlag, _ := cmd.Flags().GetString("date")
		atFlag, _ := cmd.Flags().GetString("at")

		var amount string
		if len(args) > 0 {
			amount = args[0]
		}

		var pk *PromptKit
		if isTerminal(cmd.OutOrStdout()) {
			kit := NewPromptKit()
			pk = &kit
		}

		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runAdd(cmd, l, amount, drinkFlag, dateFlag, atFlag, pk, time.Now)
		})
	},
}.Build()

// runAdd logs a drink. Missing amount and drink are prompted for when pk is
// non-nil.
func runAdd(
	cmd *cobra.Command,
	l *ledger.Ledger,
	amountArg, drinkFlag, dateFlag, atFlag string,
	pk *PromptKit,
	nowFn func() time.Time,
) error {
	now := nowFn()
	unit := l.Unit()

	drink := entry.Water
	if drinkFlag != "" {
		d, err := entry.ParseDrinkType(drinkFlag)
		if err != nil {
			return err
		}
		drink = d
	}

	if amountArg == "" {
		if pk == nil {
			return fmt.Errorf("amount is required (e.g. 250, 250ml, 8oz)")
		}
		if drinkFlag == "" {
			d, err := promptDrink(pk)
			if err != nil {
				return err
			}
			drink = d
		}
		a, err := pk.Prompt(fmt.Sprintf("Amount (%s)", unit), func(in string) error {
			_, err := entry.ParseAmount(in, unit)
			return err
		})
		if err != nil {
			return err
		}
		amountArg = a
	}

	ml, err := entry.ParseAmount(amountArg, unit)
	if err != nil {
		return err
	}

	ts, err := resolveTimestamp(now, dateFlag, atFlag)
	if err != nil {
		return err
	}

	goal := l.DailyGoal()
	alreadyMet := l.TodayTotal() >= goal
	reached := false
	unsubscribe := l.Subscribe(func(ev ledger.Event) {
		if ev.Kind == ledger.EntryAdded && !alreadyMet && l.TodayTotal() >= goal {
			reached = true
		}
	})
	defer unsubscribe()

	e, err := l.AddEntryAt(ml, drink, ts)
	if err != nil && !errors.Is(err, ledger.ErrPersistence) {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "logged %s of %s %s\n", Primary(l.DisplayAmount(e.Amount)), Drink(e.DrinkType), Silent(e.ID))
	if e.DrinkType != entry.Water {
		_, _ = fmt.Fprintf(w, "  counts as %s\n", l.DisplayAmount(e.Hydration()))
	}
	_, _ = fmt.Fprintf(w, "today: %s of %s (%s)\n",
		Primary(l.DisplayAmount(l.TodayTotal())), l.DisplayAmount(goal), percent(l.TodayProgress()))
	if reached {
		_, _ = fmt.Fprintln(w, Success("Daily goal reached!"))
	}

	if err != nil {
		_, _ = fmt.Fprintln(w, Warning("the drink was logged but could not be saved"))
		return err
	}
	return nil
}

func promptDrink(pk *PromptKit) (entry.DrinkType, error) {
	d, err := pk.Select("What did you drink?", entry.AllDrinkTypes())
	if err != nil {
		return "", err
	}
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", entry.ErrUnknownDrinkType, d)
	}
	return d, nil
}

// resolveTimestamp applies --date and --at to now. A date alone keeps the
// current time of day. Timestamps in the future are rejected.
func resolveTimestamp(now time.Time, dateFlag, atFlag string) (time.Time, error) {
	ts := now
	if dateFlag != "" {
		d, err := time.ParseInLocation("2006-01-02", dateFlag, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", dateFlag)
		}
		ts = time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location())
	}
	if atFlag != "" {
		tod, err := reminder.ParseTimeOfDay(atFlag)
		if err != nil {
			return time.Time{}, err
		}
		ts = tod.On(ts)
	}
	if ts.After(now) {
		return time.Time{}, fmt.Errorf("cannot log a drink in the future (%s)", ts.Format("2006-01-02 15:04"))
	}
	return ts, nil
}
