package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/devlog/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	contentRoot string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "devlog",
	Short: "Sync and browse the robot build devlog",
	Long: `A CLI tool that ingests the hand-written markdown devlog of the robot
build and regenerates the typed data modules the website renders from.

The content tree holds one directory per markdown dialect (milestones/,
sessions/, stream/, journal/, blog/, ideas/) plus hand-curated overrides
under curated/. A sync run parses everything, classifies entries, merges
curated records over generated ones, and rewrites the data modules and the
content index wholesale.

Quick Start:
  devlog sync                  # Regenerate data modules from the content tree
  devlog list                  # List indexed entries
  devlog show <slug>           # View one entry
  devlog healthcheck           # Verify the content tree layout

For detailed usage, see: https://github.com/iksnae/devlog`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&contentRoot, "root", "content", "Content tree location")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
