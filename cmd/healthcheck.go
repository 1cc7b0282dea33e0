package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/devlog/internal"
	"github.com/spf13/cobra"
)

var healthcheckVerbose bool

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check the content tree layout and index",
	Long: `Check the health of the devlog setup by verifying:
  • Content root presence
  • Markdown file counts per dialect directory
  • Curated override files
  • Content index accessibility

Useful before a sync run or when list/show come up empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("Devlog Health Check"))
		fmt.Println()

		fmt.Println("Step 1: Checking content root...")
		if _, err := os.Stat(contentRoot); err != nil {
			fmt.Println(warnStyle.Render("⚠ Content root not found: " + contentRoot))
			fmt.Println("  A sync run would be a no-op; prior output stays in place.")
			return nil
		}
		fmt.Println(okStyle.Render("✓ Content root found: " + contentRoot))
		fmt.Println()

		fmt.Println("Step 2: Counting source files...")
		dialects := []string{
			internal.DialectMilestones,
			internal.DialectSessions,
			internal.DialectStream,
			internal.DialectJournal,
			internal.DialectBlog,
			internal.DialectIdeas,
		}
		total := 0
		for _, dialect := range dialects {
			count := countMarkdownFiles(filepath.Join(contentRoot, dialect))
			total += count
			if count == 0 {
				fmt.Println(warnStyle.Render(fmt.Sprintf("⚠ %-11s no markdown files", dialect)))
			} else {
				fmt.Println(okStyle.Render(fmt.Sprintf("✓ %-11s %d file(s)", dialect, count)))
			}
		}
		fmt.Println()

		fmt.Println("Step 3: Checking curated overrides...")
		for _, name := range []string{"timeline.yaml", "journal.yaml"} {
			path := filepath.Join(contentRoot, "curated", name)
			if _, err := os.Stat(path); err != nil {
				fmt.Println(warnStyle.Render("⚠ Missing " + path + " (optional)"))
			} else {
				fmt.Println(okStyle.Render("✓ Found " + path))
			}
		}
		fmt.Println()

		fmt.Println("Step 4: Checking content index...")
		indexOK := false
		entryCount := 0
		if _, err := os.Stat(indexPath); err != nil {
			fmt.Println(warnStyle.Render("⚠ Index not found at " + indexPath + " (run 'devlog sync')"))
		} else {
			db, err := internal.OpenIndex(indexPath)
			if err != nil {
				fmt.Println(failStyle.Render("✗ Index exists but cannot be opened"))
				if healthcheckVerbose {
					fmt.Printf("  %v\n", err)
				}
			} else {
				entries, qerr := internal.QueryEntries(db, internal.EntryFilter{})
				db.Close()
				if qerr != nil {
					fmt.Println(failStyle.Render("✗ Index exists but cannot be queried"))
					if healthcheckVerbose {
						fmt.Printf("  %v\n", qerr)
					}
				} else {
					indexOK = true
					entryCount = len(entries)
					fmt.Println(okStyle.Render(fmt.Sprintf("✓ Index holds %d entr(y/ies)", entryCount)))
				}
			}
		}
		fmt.Println()

		fmt.Println(sectionStyle.Render("Summary"))
		switch {
		case total > 0 && indexOK:
			fmt.Println(okStyle.Render(fmt.Sprintf("✓ %d source file(s), index ready", total)))
		case total > 0:
			fmt.Println(warnStyle.Render("⚠ Sources present but no usable index; run 'devlog sync'"))
		default:
			fmt.Println(warnStyle.Render("⚠ Content root exists but holds no markdown sources"))
		}
		return nil
	},
}

// countMarkdownFiles counts .md files directly inside dir; a missing or
// unreadable directory counts as zero.
func countMarkdownFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".md") {
			count++
		}
	}
	return count
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "details", false, "Show detailed diagnostic information")
	healthcheckCmd.Flags().StringVar(&indexPath, "index", "devlog.db", "Content index location")
}
