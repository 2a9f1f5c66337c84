package main

import (
	"os"

	"github.com/spf13/cobra"

	"surgemin/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "surgemin",
	Short: "Prune dead code from Surge projects",
	Long: `surgemin deletes definitions the Surge compiler reports as never used
or never constructed. By default it only shows the diff; pass --fix to
rewrite the files, gated on a clean working copy.`,
	RunE:          runPrune,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
}

func main() {
	// Версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
