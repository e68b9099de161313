package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafCommandBuild(t *testing.T) {
	cmd := LeafCommand{
		Use:     "test",
		Aliases: []string{"t"},
		Short:   "A test command",
		Example: "  hydromind test",
		Args:    cobra.ExactArgs(1),
		BoolFlags: []BoolFlag{
			{Name: "verbose", Usage: "enable verbose output", Default: false},
			{Name: "dry-run", Usage: "simulate execution", Default: true},
		},
		StrFlags: []StringFlag{
			{Name: "output", Shorthand: "o", Usage: "output file", Default: "out.txt"},
		},
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "test", cmd.Use)
	assert.Equal(t, []string{"t"}, cmd.Aliases)
	assert.Equal(t, "A test command", cmd.Short)
	assert.Equal(t, "  hydromind test", cmd.Example)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	verbose := cmd.Flags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "false", verbose.DefValue)

	dryRun := cmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRun)
	assert.Equal(t, "true", dryRun.DefValue)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "out.txt", output.DefValue)
	assert.Equal(t, "o", output.Shorthand)
}

func TestLeafCommandBuildNoFlags(t *testing.T) {
	cmd := LeafCommand{
		Use:   "simple",
		Short: "A simple command",
		RunE:  func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "simple", cmd.Use)
	assert.False(t, cmd.Flags().HasFlags())
}

func TestGroupCommandBuild(t *testing.T) {
	child := LeafCommand{Use: "child", RunE: func(*cobra.Command, []string) error { return nil }}.Build()
	group := GroupCommand{
		Use:         "group",
		Short:       "A group",
		Subcommands: []*cobra.Command{child},
	}.Build()

	assert.Equal(t, "group", group.Use)
	require.Len(t, group.Commands(), 1)
	assert.Equal(t, "child", group.Commands()[0].Name())
}
