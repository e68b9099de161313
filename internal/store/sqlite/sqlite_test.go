package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", FileName)
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func testEntries() []entry.Entry {
	loc := time.FixedZone("PST", -8*3600)
	return []entry.Entry{
		{ID: "z", Amount: 350, DrinkType: entry.Water, Timestamp: time.Date(2026, 3, 11, 7, 30, 0, 500, loc)},
		{ID: "m", Amount: 250, DrinkType: entry.Coffee, Timestamp: time.Date(2026, 3, 11, 9, 0, 0, 0, loc)},
		{ID: "a", Amount: 199.5, DrinkType: entry.Milk, Timestamp: time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)},
	}
}

func TestLoadEntriesEmpty(t *testing.T) {
	s, _ := openTestStore(t)

	entries, err := s.LoadEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesRoundTripKeepsOrder(t *testing.T) {
	s, path := openTestStore(t)
	want := testEntries()

	require.NoError(t, s.SaveEntries(want))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.LoadEntries()
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Amount, got[i].Amount)
		assert.Equal(t, want[i].DrinkType, got[i].DrinkType)
		assert.True(t, want[i].Timestamp.Equal(got[i].Timestamp), "timestamp %d", i)
	}
}

func TestSaveEntriesReplaces(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.SaveEntries(testEntries()))
	require.NoError(t, s.SaveEntries(testEntries()[1:2]))

	got, err := s.LoadEntries()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m", got[0].ID)
}

func TestSaveEntriesDuplicateIDRollsBack(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.SaveEntries(testEntries()))

	dup := testEntries()
	dup[2].ID = dup[0].ID
	assert.Error(t, s.SaveEntries(dup))

	got, err := s.LoadEntries()
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestLoadEntriesRejectsUnknownDrink(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.db.Exec(`INSERT INTO entries (position, id, amount, timestamp, drink_type) VALUES (0, 'x', 100, '2026-03-11T09:00:00Z', 'Soda')`)
	require.NoError(t, err)

	_, err = s.LoadEntries()
	assert.ErrorIs(t, err, entry.ErrUnknownDrinkType)
}

func TestSettingsRoundTrip(t *testing.T) {
	s, path := openTestStore(t)

	_, ok, err := s.LoadSetting("dailyGoal")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveSetting("dailyGoal", "3000"))
	require.NoError(t, s.SaveSetting("dailyGoal", "2200"))
	require.NoError(t, s.SaveSetting("hydrationUnit", "cups"))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.LoadSetting("dailyGoal")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2200", v)

	v, ok, err = reopened.LoadSetting("hydrationUnit")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cups", v)
}
