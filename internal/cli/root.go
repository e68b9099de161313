package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagStore   = "store"
	flagDataDir = "data-dir"
	flagVerbose = "verbose"
)

var rootCmd = &cobra.Command{
	Use:           "hydromind",
	Short:         "Track how much you drink and keep your hydration streak going",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	registerGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(versionCmd)
}

func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.String(flagStore, "", "storage backend: json or sqlite (default from HYDROMIND_STORE, else json)")
	fs.String(flagDataDir, "", "data directory (default from HYDROMIND_DIR, else ~/.hydromind)")
	fs.BoolP(flagVerbose, "v", false, "log debug output to stderr")
}

func Execute() error {
	return rootCmd.Execute()
}
