package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/devlog/internal"
	"github.com/spf13/cobra"
)

var (
	listType  string
	listTag   string
	indexPath string
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	slugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed devlog entries",
	Long: `List entries from the content index built by the last sync run.
Filter with --type (milestone, breakthrough, failure, session, blog) or
--tag (hardware, vision, motion, audio, ai, web, simulation).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := internal.OpenIndex(indexPath)
		if err != nil {
			return fmt.Errorf("failed to open index (run 'devlog sync' first): %w", err)
		}
		defer db.Close()

		entries, err := internal.QueryEntries(db, internal.EntryFilter{Type: listType, Tag: listTag})
		if err != nil {
			return err
		}
		displayEntries(entries)
		return nil
	},
}

func displayEntries(entries []internal.IndexEntry) {
	if len(entries) == 0 {
		fmt.Println(headerStyle.Render("No entries found"))
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Found %d entr(y/ies)", len(entries))))
	fmt.Println()

	// Use tabwriter for aligned columns
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, titleStyle.Render("Date")+"\t"+titleStyle.Render("Type")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Tags")+"\t"+titleStyle.Render("Slug")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 110))

	for _, entry := range entries {
		title := entry.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}

		kind := entry.Type
		if kind == "" {
			kind = entry.Source
		}

		slug := entry.Slug
		if len(slug) > 30 {
			slug = slug[:27] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			dateStyle.Render(entry.Date),
			typeStyle.Render(kind),
			title,
			tagStyle.Render(strings.Join(entry.Tags, ",")),
			slugStyle.Render(slug))
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(slugStyle.Render("Tip: use `devlog show <slug>` to view an entry"))
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by entry type")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag")
	listCmd.Flags().StringVar(&indexPath, "index", "devlog.db", "Content index location")
}
