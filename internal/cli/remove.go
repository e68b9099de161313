package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/spf13/cobra"
)

var removeCmd = LeafCommand{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a logged drink",
	Args:    cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		yesFlag, _ := cmd.Flags().GetBool("yes")

		var confirm ConfirmFunc
		if yesFlag || !isTerminal(cmd.OutOrStdout()) {
			confirm = AlwaysYes()
		} else {
			confirm = NewConfirmFunc()
		}

		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runRemove(cmd, l, args[0], confirm)
		})
	},
}.Build()

func runRemove(cmd *cobra.Command, l *ledger.Ledger, id string, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()

	e, ok := l.FindEntry(id)
	if !ok {
		_, _ = fmt.Fprintf(w, "entry '%s' not found\n", id)
		return nil
	}

	_, _ = fmt.Fprintf(w, "  drink:  %s\n", Drink(e.DrinkType))
	_, _ = fmt.Fprintf(w, "  amount: %s\n", Primary(l.DisplayAmount(e.Amount)))
	_, _ = fmt.Fprintf(w, "  when:   %s\n", e.Timestamp.Local().Format("2006-01-02 15:04"))

	if confirm != nil {
		ok, err := confirm("Remove this entry?")
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
	}

	removed, err := l.RemoveEntry(id)
	if removed {
		_, _ = fmt.Fprintf(w, "removed entry %s\n", Silent(id))
	}
	return err
}
