package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/spf13/cobra"
)

var weekCmd = LeafCommand{
	Use:   "week",
	Short: "Show hydration totals for the last seven days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runWeek(cmd, l)
		})
	},
}.Build()

func runWeek(cmd *cobra.Command, l *ledger.Ledger) error {
	w := cmd.OutOrStdout()
	goal := l.DailyGoal()

	_, _ = fmt.Fprintf(w, "%s\n", Text("Last 7 days"))
	for _, day := range l.WeeklyData() {
		_, _ = fmt.Fprintln(w, weekLine(day, goal, l.DisplayAmount(day.Total)))
	}
	_, _ = fmt.Fprintf(w, "goal: %s per day\n", l.DisplayAmount(goal))
	return nil
}

// weekLine renders one day as "Mon 03-09 ████░░░░ 1800 mL", marking days that
// met the goal.
func weekLine(day ledger.DayTotal, goal float64, amount string) string {
	bar := progressBar(day.Total/goal, barWidth)
	mark := " "
	if day.Total >= goal {
		bar = Success(bar)
		mark = Success("✓")
	} else {
		bar = Info(bar)
	}
	return fmt.Sprintf("  %s %s %s %s %s", day.Label, Silent(day.Date.Format("01-02")), bar, amount, mark)
}
