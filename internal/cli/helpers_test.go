package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/Flyrell/hydromind/internal/store"
	"github.com/spf13/cobra"
)

// Wednesday noon, so the trailing week spans Thu 03-05 through Wed 03-11.
var testNow = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newTestLedger(t *testing.T) (*ledger.Ledger, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	return ledger.New(st, ledger.Options{Now: fixedNow}), st
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}
