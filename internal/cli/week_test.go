package cli

import (
	"strings"
	"testing"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekShowsSevenDays(t *testing.T) {
	l, _ := newTestLedger(t)
	cmd, out := newTestCmd()

	require.NoError(t, runWeek(cmd, l))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[1], "Thu 03-05")
	assert.Contains(t, lines[7], "Wed 03-11")
	assert.Contains(t, lines[8], "goal: 2500 mL per day")
}

func TestWeekMarksGoalMet(t *testing.T) {
	l, _ := newTestLedger(t)
	require.NoError(t, l.SetDailyGoal(1000))
	_, err := l.AddEntry(1200, entry.Water)
	require.NoError(t, err)

	cmd, out := newTestCmd()
	require.NoError(t, runWeek(cmd, l))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines[7], "1200 mL")
	assert.Contains(t, lines[7], "✓")
	assert.NotContains(t, lines[6], "✓")
}
