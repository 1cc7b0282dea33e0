package emit

import (
	"fmt"
	"io"

	"github.com/iksnae/devlog/internal"
)

// TimelineEmitter writes the timeline data module.
type TimelineEmitter struct{}

// Filename returns the emitted module name.
func (e *TimelineEmitter) Filename() string {
	return "timeline_gen.go"
}

// Emit writes the timeline module: the entry type, the sorted data array,
// and its pure accessors.
func (e *TimelineEmitter) Emit(snapshot *internal.Snapshot, w io.Writer) error {
	writeHeader(w, snapshot.SyncedAt)

	_, _ = io.WriteString(w, `// TimelineEntry is one devlog timeline event.
type TimelineEntry struct {
	ID      string
	Date    string
	Title   string
	Type    string
	Summary string
	Tags    []string
	Content string
}

// Timeline holds every timeline entry, newest first.
var Timeline = []TimelineEntry{
`)

	for _, entry := range snapshot.Timeline {
		_, _ = fmt.Fprintf(w, "\t{\n")
		_, _ = fmt.Fprintf(w, "\t\tID:      %s,\n", quote(entry.ID))
		_, _ = fmt.Fprintf(w, "\t\tDate:    %s,\n", quote(entry.Date))
		_, _ = fmt.Fprintf(w, "\t\tTitle:   %s,\n", quote(entry.Title))
		_, _ = fmt.Fprintf(w, "\t\tType:    %s,\n", quote(entry.Type))
		_, _ = fmt.Fprintf(w, "\t\tSummary: %s,\n", quote(entry.Summary))
		_, _ = fmt.Fprintf(w, "\t\tTags:    %s,\n", stringSlice(entry.Tags))
		if entry.Content != "" {
			_, _ = fmt.Fprintf(w, "\t\tContent: %s,\n", quote(entry.Content))
		}
		_, _ = fmt.Fprintf(w, "\t},\n")
	}

	_, _ = io.WriteString(w, `}

// TimelineSorted returns every entry, newest first.
func TimelineSorted() []TimelineEntry {
	entries := make([]TimelineEntry, len(Timeline))
	copy(entries, Timeline)
	return entries
}

// TimelineByType returns entries of one type, order preserved.
func TimelineByType(entryType string) []TimelineEntry {
	var out []TimelineEntry
	for _, e := range Timeline {
		if e.Type == entryType {
			out = append(out, e)
		}
	}
	return out
}

// TimelineByTag returns entries carrying a tag, order preserved.
func TimelineByTag(tag string) []TimelineEntry {
	var out []TimelineEntry
	for _, e := range Timeline {
		for _, t := range e.Tags {
			if t == tag {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// TimelineByID returns the entry with the given id.
func TimelineByID(id string) (TimelineEntry, bool) {
	for _, e := range Timeline {
		if e.ID == id {
			return e, true
		}
	}
	return TimelineEntry{}, false
}
`)
	return nil
}
