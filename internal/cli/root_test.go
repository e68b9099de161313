package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name()
	}

	for _, want := range []string{
		"add", "remove", "today", "week", "history", "streak",
		"settings", "reminders", "export", "dashboard", "sample", "version",
	} {
		assert.Contains(t, names, want)
	}
}

func TestRootUseName(t *testing.T) {
	assert.Equal(t, "hydromind", rootCmd.Use)
}

func TestRootGlobalFlags(t *testing.T) {
	for _, name := range []string{flagStore, flagDataDir, flagVerbose} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestSettingsGroupHasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"get", "set", "list"}, names)
}
