package emit

import (
	"fmt"
	"io"

	"github.com/iksnae/devlog/internal"
)

// BlogEmitter writes the blog drafts data module.
type BlogEmitter struct{}

// Filename returns the emitted module name.
func (e *BlogEmitter) Filename() string {
	return "blog_gen.go"
}

// Emit writes the blog drafts module.
func (e *BlogEmitter) Emit(snapshot *internal.Snapshot, w io.Writer) error {
	writeHeader(w, snapshot.SyncedAt)

	_, _ = io.WriteString(w, `// BlogDraft is a blog post in some stage of writing.
type BlogDraft struct {
	Title   string
	Status  string
	Hook    string
	Angle   string
	Content string
}

// BlogDrafts holds every draft in parse order.
var BlogDrafts = []BlogDraft{
`)

	for _, draft := range snapshot.Drafts {
		_, _ = fmt.Fprintf(w, "\t{\n")
		_, _ = fmt.Fprintf(w, "\t\tTitle:   %s,\n", quote(draft.Title))
		_, _ = fmt.Fprintf(w, "\t\tStatus:  %s,\n", quote(draft.Status))
		if draft.Hook != "" {
			_, _ = fmt.Fprintf(w, "\t\tHook:    %s,\n", quote(draft.Hook))
		}
		if draft.Angle != "" {
			_, _ = fmt.Fprintf(w, "\t\tAngle:   %s,\n", quote(draft.Angle))
		}
		_, _ = fmt.Fprintf(w, "\t\tContent: %s,\n", quote(draft.Content))
		_, _ = fmt.Fprintf(w, "\t},\n")
	}

	_, _ = io.WriteString(w, `}

// BlogDraftsByStatus returns drafts in one stage, order preserved.
func BlogDraftsByStatus(status string) []BlogDraft {
	var out []BlogDraft
	for _, d := range BlogDrafts {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

// BlogDraftByTitle returns the draft with the given title.
func BlogDraftByTitle(title string) (BlogDraft, bool) {
	for _, d := range BlogDrafts {
		if d.Title == title {
			return d, true
		}
	}
	return BlogDraft{}, false
}
`)
	return nil
}
