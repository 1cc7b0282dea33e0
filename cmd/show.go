package cmd

import (
	"fmt"
	"strings"

	"github.com/iksnae/devlog/internal"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one indexed entry",
	Long:  `Show a single entry from the content index by its slug. Use 'devlog list' to see available slugs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]

		db, err := internal.OpenIndex(indexPath)
		if err != nil {
			return fmt.Errorf("failed to open index (run 'devlog sync' first): %w", err)
		}
		defer db.Close()

		entry, err := internal.GetEntry(db, slug)
		if err != nil {
			return err
		}
		if entry == nil {
			return fmt.Errorf("entry not found: %s (use 'devlog list' to see available slugs)", slug)
		}

		displayEntry(entry)
		return nil
	},
}

func displayEntry(entry *internal.IndexEntry) {
	fmt.Println(headerStyle.Render(entry.Title))
	fmt.Println()

	fmt.Printf("%s %s\n", titleStyle.Render("Date:"), dateStyle.Render(entry.Date))
	fmt.Printf("%s %s\n", titleStyle.Render("Source:"), entry.Source)
	if entry.Type != "" {
		fmt.Printf("%s %s\n", titleStyle.Render("Type:"), typeStyle.Render(entry.Type))
	}
	if entry.Mood != "" {
		fmt.Printf("%s %s\n", titleStyle.Render("Mood:"), entry.Mood)
	}
	if len(entry.Tags) > 0 {
		fmt.Printf("%s %s\n", titleStyle.Render("Tags:"), tagStyle.Render(strings.Join(entry.Tags, ", ")))
	}
	fmt.Printf("%s %s\n", titleStyle.Render("Slug:"), slugStyle.Render(entry.Slug))

	if entry.Summary != "" {
		fmt.Println()
		fmt.Println(entry.Summary)
	}
	if entry.Content != "" && entry.Content != entry.Summary {
		fmt.Println()
		fmt.Println(entry.Content)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&indexPath, "index", "devlog.db", "Content index location")
}
