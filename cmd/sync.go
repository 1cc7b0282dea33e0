package cmd

import (
	"fmt"

	"github.com/iksnae/devlog/internal"
	"github.com/iksnae/devlog/internal/emit"
	"github.com/spf13/cobra"
)

var (
	syncOutDir    string
	syncIndexPath string
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Regenerate data modules from the content tree",
	Long: `Parse every markdown dialect in the content tree, merge curated records
over generated ones, and rewrite the generated data modules and the content
index.

The run is all-or-nothing: nothing is written until parsing and merging have
completed, so a failed run leaves the previous output untouched. A missing
content root is not an error; the run logs a notice and exits 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := internal.NewPipeline(contentRoot).Run()
		if err != nil {
			return err
		}
		if snapshot == nil {
			internal.PrintInfo(fmt.Sprintf("Content root %s does not exist, nothing to sync", contentRoot))
			return nil
		}

		steps := []internal.Step{
			{
				Message: "Writing data modules",
				Fn: func() error {
					return emit.WriteAll(snapshot, syncOutDir)
				},
			},
			{
				Message: "Rebuilding content index",
				Fn: func() error {
					db, err := internal.OpenIndex(syncIndexPath)
					if err != nil {
						return err
					}
					defer db.Close()
					return internal.RebuildIndex(db, snapshot)
				},
			},
		}
		if err := internal.RunSteps(steps); err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf(
			"Synced %d timeline entries, %d journal entries, %d sessions, %d drafts to %s",
			len(snapshot.Timeline), len(snapshot.Journal), len(snapshot.Sessions),
			len(snapshot.Drafts), syncOutDir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVarP(&syncOutDir, "out", "o", "devlogdata", "Output directory for generated modules")
	syncCmd.Flags().StringVar(&syncIndexPath, "index", "devlog.db", "Content index location")
}
