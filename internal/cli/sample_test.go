package cli

import (
	"testing"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSeedsEmptyLedger(t *testing.T) {
	l, st := newTestLedger(t)
	cmd, out := newTestCmd()

	require.NoError(t, runSample(cmd, l))

	assert.Equal(t, "added 30 sample drinks\n", out.String())
	stored, err := st.LoadEntries()
	require.NoError(t, err)
	assert.Len(t, stored, 30)
}

func TestSampleSkipsNonEmptyLedger(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.AddEntry(250, entry.Water)
	require.NoError(t, err)
	cmd, out := newTestCmd()

	require.NoError(t, runSample(cmd, l))

	assert.Contains(t, out.String(), "already has entries")
	assert.Len(t, l.Entries(), 1)
}
