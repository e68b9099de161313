package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/spf13/cobra"
)

var streakCmd = LeafCommand{
	Use:   "streak",
	Short: "Show how many consecutive days the daily goal was met",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runStreak(cmd, l)
		})
	},
}.Build()

func runStreak(cmd *cobra.Command, l *ledger.Ledger) error {
	w := cmd.OutOrStdout()
	streak := l.CurrentStreak()

	_, _ = fmt.Fprintf(w, "current streak: %s\n", Primary(days(streak)))
	if l.TodayTotal() < l.DailyGoal() {
		left := l.DailyGoal() - l.TodayTotal()
		_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("%s to go today", l.DisplayAmount(left))))
	}
	return nil
}
