package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	dryRun  bool
	verbose bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "begone",
	Short: "Remove build artifacts and dependency caches",
	Long: `begone - remove build artifacts and dependency caches.

Recursively finds directories like target/, node_modules/, __pycache__/,
bin/ and obj/ under a root path and deletes them, with dry-run preview.
Pick an ecosystem subcommand, or 'all' for every known artifact name.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "Preview deletions without touching the filesystem")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also report directories that were scanned but not matched")

	// Register all subcommands
	for _, c := range ecosystemCommands() {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
