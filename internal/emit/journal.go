package emit

import (
	"fmt"
	"io"

	"github.com/iksnae/devlog/internal"
)

// JournalEmitter writes the journal data module.
type JournalEmitter struct{}

// Filename returns the emitted module name.
func (e *JournalEmitter) Filename() string {
	return "journal_gen.go"
}

// Emit writes the journal module. The CodeSnippet type it references is
// declared by the sessions module in the same generated package.
func (e *JournalEmitter) Emit(snapshot *internal.Snapshot, w io.Writer) error {
	writeHeader(w, snapshot.SyncedAt)

	_, _ = io.WriteString(w, `// JournalEntry is one long-form devlog entry.
type JournalEntry struct {
	Slug           string
	Title          string
	Date           string
	Summary        string
	Content        string
	Tags           []string
	Mood           string
	ReadingTime    int
	CodeSnippets   []CodeSnippet
	LinkedTimeline []string
	LinkedCommits  []string
}

// Journal holds every journal entry, newest first.
var Journal = []JournalEntry{
`)

	for _, entry := range snapshot.Journal {
		_, _ = fmt.Fprintf(w, "\t{\n")
		_, _ = fmt.Fprintf(w, "\t\tSlug:        %s,\n", quote(entry.Slug))
		_, _ = fmt.Fprintf(w, "\t\tTitle:       %s,\n", quote(entry.Title))
		_, _ = fmt.Fprintf(w, "\t\tDate:        %s,\n", quote(entry.Date))
		_, _ = fmt.Fprintf(w, "\t\tSummary:     %s,\n", quote(entry.Summary))
		_, _ = fmt.Fprintf(w, "\t\tContent:     %s,\n", quote(entry.Content))
		_, _ = fmt.Fprintf(w, "\t\tTags:        %s,\n", stringSlice(entry.Tags))
		_, _ = fmt.Fprintf(w, "\t\tMood:        %s,\n", quote(entry.Mood))
		_, _ = fmt.Fprintf(w, "\t\tReadingTime: %d,\n", entry.ReadingTime)
		if len(entry.CodeSnippets) > 0 {
			_, _ = fmt.Fprintf(w, "\t\tCodeSnippets: %s,\n", snippetSlice(entry.CodeSnippets))
		}
		if len(entry.LinkedTimeline) > 0 {
			_, _ = fmt.Fprintf(w, "\t\tLinkedTimeline: %s,\n", stringSlice(entry.LinkedTimeline))
		}
		if len(entry.LinkedCommits) > 0 {
			_, _ = fmt.Fprintf(w, "\t\tLinkedCommits: %s,\n", stringSlice(entry.LinkedCommits))
		}
		_, _ = fmt.Fprintf(w, "\t},\n")
	}

	_, _ = io.WriteString(w, `}

// JournalSorted returns every journal entry, newest first.
func JournalSorted() []JournalEntry {
	entries := make([]JournalEntry, len(Journal))
	copy(entries, Journal)
	return entries
}

// JournalBySlug returns the entry with the given slug. Broken links resolve
// to an empty lookup, not an error.
func JournalBySlug(slug string) (JournalEntry, bool) {
	for _, e := range Journal {
		if e.Slug == slug {
			return e, true
		}
	}
	return JournalEntry{}, false
}

// JournalByTag returns entries carrying a tag, order preserved.
func JournalByTag(tag string) []JournalEntry {
	var out []JournalEntry
	for _, e := range Journal {
		for _, t := range e.Tags {
			if t == tag {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// JournalByMood returns entries with a given mood, order preserved.
func JournalByMood(mood string) []JournalEntry {
	var out []JournalEntry
	for _, e := range Journal {
		if e.Mood == mood {
			out = append(out, e)
		}
	}
	return out
}
`)
	return nil
}
