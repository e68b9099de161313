package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/spf13/cobra"
)

var sampleCmd = LeafCommand{
	Use:   "sample",
	Short: "Fill an empty ledger with a week of demo drinks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runSample(cmd, l)
		})
	},
}.Build()

func runSample(cmd *cobra.Command, l *ledger.Ledger) error {
	w := cmd.OutOrStdout()

	seeded, err := l.SeedSampleData()
	if err != nil {
		return err
	}
	if !seeded {
		_, _ = fmt.Fprintln(w, Warning("ledger already has entries, sample data not added"))
		return nil
	}
	_, _ = fmt.Fprintf(w, "added %s sample drinks\n", Primary(fmt.Sprint(len(l.Entries()))))
	return nil
}
