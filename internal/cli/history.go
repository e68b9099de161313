package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/spf13/cobra"
)

var historyCmd = LeafCommand{
	Use:   "history",
	Short: "Show averages, best day, drink breakdown and recent drinks",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "timeframe", Shorthand: "t", Usage: "week, month or all", Default: "week"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		tfFlag, _ := cmd.Flags().GetString("timeframe")
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runHistory(cmd, l, tfFlag, time.Now)
		})
	},
}.Build()

func runHistory(cmd *cobra.Command, l *ledger.Ledger, tfFlag string, nowFn func() time.Time) error {
	tf, err := ledger.ParseTimeframe(tfFlag)
	if err != nil {
		return err
	}

	st := l.Stats(tf)
	w := cmd.OutOrStdout()
	loc := nowFn().Location()

	_, _ = fmt.Fprintf(w, "%s\n", Text("History ("+tf.String()+")"))
	if st.Entries == 0 {
		_, _ = fmt.Fprintln(w, Silent("  no drinks logged in this timeframe"))
	}
	_, _ = fmt.Fprintf(w, "  average daily  %s\n", Primary(l.DisplayAmount(st.AverageDaily)))
	_, _ = fmt.Fprintf(w, "  best day       %s\n", Primary(l.DisplayAmount(st.BestDay)))
	_, _ = fmt.Fprintf(w, "  streak         %s\n", days(st.Streak))
	_, _ = fmt.Fprintf(w, "  drinks         %d over %s\n", st.Entries, days(st.Days))

	if len(st.Breakdown) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", Text("By drink"))
		for _, b := range st.Breakdown {
			_, _ = fmt.Fprintf(w, "  %s%s %s\n", Drink(b.DrinkType), spaces(10-len(b.DrinkType)), l.DisplayAmount(b.Amount))
		}
	}

	if len(st.Recent) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", Text("Recent"))
		for _, e := range st.Recent {
			_, _ = fmt.Fprintf(w, "  %s  %s%s %s  %s\n",
				e.Timestamp.In(loc).Format("Jan 02 15:04"),
				Drink(e.DrinkType), spaces(10-len(e.DrinkType)),
				padRight(l.DisplayAmount(e.Amount), 10),
				Silent(e.ID))
		}
	}
	return nil
}
