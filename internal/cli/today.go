package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/spf13/cobra"
)

var todayCmd = LeafCommand{
	Use:   "today",
	Short: "Show today's drinks and progress towards the daily goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runToday(cmd, l, time.Now)
		})
	},
}.Build()

func runToday(cmd *cobra.Command, l *ledger.Ledger, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()
	now := nowFn()

	_, _ = fmt.Fprintf(w, "%s\n", Text("Today, "+now.Format("Mon Jan 2")))

	entries := l.TodayEntries()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, Silent("  no drinks logged yet"))
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "  %s  %s %s  %s\n",
			e.Timestamp.In(now.Location()).Format("15:04"),
			Drink(e.DrinkType)+spaces(10-len(e.DrinkType)),
			padRight(l.DisplayAmount(e.Amount), 10),
			Silent(e.ID))
	}

	progress := l.TodayProgress()
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%s of %s  %s\n",
		Primary(l.DisplayAmount(l.TodayTotal())), l.DisplayAmount(l.DailyGoal()), percent(progress))
	_, _ = fmt.Fprintln(w, Info(progressBar(progress, barWidth)))
	_, _ = fmt.Fprintf(w, "streak: %s\n", days(l.CurrentStreak()))
	return nil
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
