package emit

import (
	"fmt"
	"io"

	"github.com/iksnae/devlog/internal"
)

// SessionsEmitter writes the session reports data module. It owns the
// CodeSnippet declaration shared with the journal module.
type SessionsEmitter struct{}

// Filename returns the emitted module name.
func (e *SessionsEmitter) Filename() string {
	return "sessions_gen.go"
}

// Emit writes the sessions module.
func (e *SessionsEmitter) Emit(snapshot *internal.Snapshot, w io.Writer) error {
	writeHeader(w, snapshot.SyncedAt)

	_, _ = io.WriteString(w, `// CodeSnippet is a fenced code block captured from a log body.
type CodeSnippet struct {
	Language string
	Content  string
}

// ClaudeSession is one structured pairing-session report.
type ClaudeSession struct {
	ID            string
	Title         string
	Date          string
	Goal          string
	Outcome       string
	Summary       string
	Prompts       []string
	CodeSnippets  []CodeSnippet
	Learnings     []string
	LinkedFeature string
}

// Sessions holds every session report, newest first.
var Sessions = []ClaudeSession{
`)

	for _, s := range snapshot.Sessions {
		_, _ = fmt.Fprintf(w, "\t{\n")
		_, _ = fmt.Fprintf(w, "\t\tID:      %s,\n", quote(s.ID))
		_, _ = fmt.Fprintf(w, "\t\tTitle:   %s,\n", quote(s.Title))
		_, _ = fmt.Fprintf(w, "\t\tDate:    %s,\n", quote(s.Date))
		if s.Goal != "" {
			_, _ = fmt.Fprintf(w, "\t\tGoal:    %s,\n", quote(s.Goal))
		}
		if s.Outcome != "" {
			_, _ = fmt.Fprintf(w, "\t\tOutcome: %s,\n", quote(s.Outcome))
		}
		_, _ = fmt.Fprintf(w, "\t\tSummary: %s,\n", quote(s.Summary))
		if len(s.Prompts) > 0 {
			_, _ = fmt.Fprintf(w, "\t\tPrompts: %s,\n", stringSlice(s.Prompts))
		}
		if len(s.CodeSnippets) > 0 {
			_, _ = fmt.Fprintf(w, "\t\tCodeSnippets: %s,\n", snippetSlice(s.CodeSnippets))
		}
		if len(s.Learnings) > 0 {
			_, _ = fmt.Fprintf(w, "\t\tLearnings: %s,\n", stringSlice(s.Learnings))
		}
		if s.LinkedFeature != "" {
			_, _ = fmt.Fprintf(w, "\t\tLinkedFeature: %s,\n", quote(s.LinkedFeature))
		}
		_, _ = fmt.Fprintf(w, "\t},\n")
	}

	_, _ = io.WriteString(w, `}

// SessionsSorted returns every session report, newest first.
func SessionsSorted() []ClaudeSession {
	sessions := make([]ClaudeSession, len(Sessions))
	copy(sessions, Sessions)
	return sessions
}

// SessionByID returns the session with the given id.
func SessionByID(id string) (ClaudeSession, bool) {
	for _, s := range Sessions {
		if s.ID == id {
			return s, true
		}
	}
	return ClaudeSession{}, false
}

// SessionsByFeature returns sessions linked to a feature, order preserved.
func SessionsByFeature(feature string) []ClaudeSession {
	var out []ClaudeSession
	for _, s := range Sessions {
		if s.LinkedFeature == feature {
			out = append(out, s)
		}
	}
	return out
}
`)
	return nil
}
