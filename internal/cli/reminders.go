package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/Flyrell/hydromind/internal/reminder"
	"github.com/spf13/cobra"
)

var remindersCmd = LeafCommand{
	Use:   "reminders",
	Short: "List today's remaining drink reminders",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "from", Usage: "first reminder of the day (e.g. 8am)", Default: "8am"},
		{Name: "to", Usage: "last reminder of the day (e.g. 10pm)", Default: "10pm"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runReminders(cmd, l, fromFlag, toFlag, time.Now)
		})
	},
}.Build()

func runReminders(cmd *cobra.Command, l *ledger.Ledger, fromFlag, toFlag string, nowFn func() time.Time) error {
	w, err := parseWindow(fromFlag, toFlag)
	if err != nil {
		return err
	}

	now := nowFn()
	interval := l.ReminderInterval()
	out := cmd.OutOrStdout()

	slots, err := reminder.Upcoming(now, interval, w, 0)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "%s\n", Text(fmt.Sprintf("Every %d min between %s and %s", interval, w.From, w.To)))
	if len(slots) == 0 {
		next, err := reminder.Next(now, interval, w)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "no more reminders today, next at %s\n", Primary(next.Format("Mon 15:04")))
		return nil
	}

	for i, s := range slots {
		line := "  " + s.Format("15:04")
		if i == 0 {
			line += Silent(fmt.Sprintf("  (in %s)", s.Sub(now).Round(time.Minute)))
		}
		_, _ = fmt.Fprintln(out, line)
	}
	return nil
}

func parseWindow(fromFlag, toFlag string) (reminder.Window, error) {
	w := reminder.DefaultWindow()
	if fromFlag != "" {
		t, err := reminder.ParseTimeOfDay(fromFlag)
		if err != nil {
			return reminder.Window{}, err
		}
		w.From = t
	}
	if toFlag != "" {
		t, err := reminder.ParseTimeOfDay(toFlag)
		if err != nil {
			return reminder.Window{}, err
		}
		w.To = t
	}
	return w, w.Validate()
}
