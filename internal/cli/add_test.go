package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/Flyrell/hydromind/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWithAmount(t *testing.T) {
	l, _ := newTestLedger(t)
	cmd, out := newTestCmd()

	require.NoError(t, runAdd(cmd, l, "250", "", "", "", nil, fixedNow))

	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 250.0, entries[0].Amount)
	assert.Equal(t, entry.Water, entries[0].DrinkType)
	assert.Equal(t, testNow, entries[0].Timestamp)
	assert.Contains(t, out.String(), "logged")
	assert.Contains(t, out.String(), "250 mL")
	assert.Contains(t, out.String(), "10%")
}

func TestAddWithUnitSuffixAndDrink(t *testing.T) {
	l, _ := newTestLedger(t)
	cmd, out := newTestCmd()

	require.NoError(t, runAdd(cmd, l, "8oz", "coffee", "", "", nil, fixedNow))

	e := l.Entries()[0]
	assert.InDelta(t, 8*entry.MillilitersPerOunce, e.Amount, 1e-9)
	assert.Equal(t, entry.Coffee, e.DrinkType)
	assert.Contains(t, out.String(), "counts as")
}

func TestAddBareNumberUsesDisplayUnit(t *testing.T) {
	l, _ := newTestLedger(t)
	require.NoError(t, l.SetUnit(entry.Cups))
	cmd, _ := newTestCmd()

	require.NoError(t, runAdd(cmd, l, "2", "", "", "", nil, fixedNow))
	assert.InDelta(t, 2*entry.MillilitersPerCup, l.Entries()[0].Amount, 1e-9)
}

func TestAddBackdated(t *testing.T) {
	l, _ := newTestLedger(t)
	cmd, _ := newTestCmd()

	require.NoError(t, runAdd(cmd, l, "300", "tea", "2026-03-09", "9:30am", nil, fixedNow))

	e := l.Entries()[0]
	assert.Equal(t, time.Date(2026, 3, 9, 9, 30, 0, 0, time.UTC), e.Timestamp)
	assert.Equal(t, 0.0, l.TodayTotal())
}

func TestAddRejectsFuture(t *testing.T) {
	l, _ := newTestLedger(t)
	cmd, _ := newTestCmd()

	err := runAdd(cmd, l, "300", "", "", "6pm", nil, fixedNow)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "future")
	assert.Empty(t, l.Entries())
}

func TestAddRejectsBadInput(t *testing.T) {
	tests := []struct {
		name          string
		amount, drink string
		date, at      string
	}{
		{"zero amount", "0", "", "", ""},
		{"garbage amount", "lots", "", "", ""},
		{"unknown drink", "250", "soda", "", ""},
		{"bad date", "250", "", "11/03/2026", ""},
		{"bad time", "250", "", "", "noonish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLedger(t)
			cmd, _ := newTestCmd()

			assert.Error(t, runAdd(cmd, l, tt.amount, tt.drink, tt.date, tt.at, nil, fixedNow))
			assert.Empty(t, l.Entries())
		})
	}
}

func TestAddRequiresAmountWithoutPrompts(t *testing.T) {
	l, _ := newTestLedger(t)
	cmd, _ := newTestCmd()

	err := runAdd(cmd, l, "", "", "", "", nil, fixedNow)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "amount is required")
}

func TestAddPromptsForMissingValues(t *testing.T) {
	l, _ := newTestLedger(t)
	cmd, _ := newTestCmd()
	fake := &fakePromptKit{answers: []string{"350"}, choice: 1}
	pk := fake.kit()

	require.NoError(t, runAdd(cmd, l, "", "", "", "", &pk, fixedNow))

	e := l.Entries()[0]
	assert.Equal(t, 350.0, e.Amount)
	assert.Equal(t, entry.Tea, e.DrinkType)
	assert.Equal(t, []string{"What did you drink?", "Amount (mL)"}, fake.asked)
}

func TestAddPromptSkipsDrinkWhenFlagGiven(t *testing.T) {
	l, _ := newTestLedger(t)
	cmd, _ := newTestCmd()
	fake := &fakePromptKit{answers: []string{"200"}}
	pk := fake.kit()

	require.NoError(t, runAdd(cmd, l, "", "milk", "", "", &pk, fixedNow))

	assert.Equal(t, entry.Milk, l.Entries()[0].DrinkType)
	assert.Equal(t, []string{"Amount (mL)"}, fake.asked)
}

func TestAddAnnouncesGoalOnce(t *testing.T) {
	l, _ := newTestLedger(t)
	require.NoError(t, l.SetDailyGoal(500))

	cmd, out := newTestCmd()
	require.NoError(t, runAdd(cmd, l, "300", "", "", "", nil, fixedNow))
	assert.NotContains(t, out.String(), "Daily goal reached")

	cmd, out = newTestCmd()
	require.NoError(t, runAdd(cmd, l, "300", "", "", "", nil, fixedNow))
	assert.Contains(t, out.String(), "Daily goal reached")

	cmd, out = newTestCmd()
	require.NoError(t, runAdd(cmd, l, "300", "", "", "", nil, fixedNow))
	assert.NotContains(t, out.String(), "Daily goal reached")
}

type brokenStore struct {
	*store.Memory
}

func (brokenStore) SaveEntries([]entry.Entry) error { return errors.New("disk full") }

func TestAddReportsPersistenceFailure(t *testing.T) {
	l := ledger.New(brokenStore{store.NewMemory()}, ledger.Options{Now: fixedNow})
	cmd, out := newTestCmd()

	err := runAdd(cmd, l, "250", "", "", "", nil, fixedNow)
	assert.ErrorIs(t, err, ledger.ErrPersistence)
	assert.Len(t, l.Entries(), 1)
	assert.Contains(t, out.String(), "could not be saved")
}

func TestResolveTimestamp(t *testing.T) {
	ts, err := resolveTimestamp(testNow, "", "")
	require.NoError(t, err)
	assert.Equal(t, testNow, ts)

	ts, err = resolveTimestamp(testNow, "2026-03-01", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), ts)

	ts, err = resolveTimestamp(testNow, "", "08:15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 8, 15, 0, 0, time.UTC), ts)
}

func TestAddPromptRejectsInvalidAmount(t *testing.T) {
	l, _ := newTestLedger(t)
	cmd, _ := newTestCmd()
	fake := &fakePromptKit{answers: []string{"lots"}}
	pk := fake.kit()

	err := runAdd(cmd, l, "", "water", "", "", &pk, fixedNow)
	assert.Error(t, err)
	assert.Empty(t, l.Entries())
}
