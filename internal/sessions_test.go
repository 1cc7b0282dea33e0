package internal

import (
	"reflect"
	"testing"

	"github.com/iksnae/devlog/testutil"
)

func TestParseSession(t *testing.T) {
	doc := RawDocument{
		Path:    "sessions/2025-12-20-robot-wakes-up.md",
		Dialect: DialectSessions,
		RawText: testutil.SampleSession,
	}

	s := ParseSession(doc)
	if s == nil {
		t.Fatal("ParseSession() returned nil for a valid report")
	}
	if s.Title != "Robot Wakes Up" {
		t.Errorf("Title = %q, want Session: prefix stripped", s.Title)
	}
	if s.Date != "2025-12-20" {
		t.Errorf("Date = %q", s.Date)
	}
	if s.Goal != "Bring up the servo controller end to end" {
		t.Errorf("Goal = %q", s.Goal)
	}
	if s.Outcome != "Completed" {
		t.Errorf("Outcome = %q", s.Outcome)
	}
	wantSummary := "Wired the servo controller into the motion loop; Robot head tracks a face target in real time"
	if s.Summary != wantSummary {
		t.Errorf("Summary = %q, want joined accomplishments %q", s.Summary, wantSummary)
	}
	wantLearnings := []string{"Calibrate servo offsets before trusting reported angles"}
	if !reflect.DeepEqual(s.Learnings, wantLearnings) {
		t.Errorf("Learnings = %v, want %v", s.Learnings, wantLearnings)
	}
	if s.ID != "robot-wakes-up-20251220" {
		t.Errorf("ID = %q", s.ID)
	}
}

func TestParseSession_ExplicitSummaryWins(t *testing.T) {
	text := `# Session: Two sections

**Date:** 2025-12-01

## Summary

The explicit summary.

## Accomplishments

- something else
`
	s := ParseSession(RawDocument{Path: "s.md", RawText: text})
	if s == nil {
		t.Fatal("ParseSession() returned nil")
	}
	if s.Summary != "The explicit summary." {
		t.Errorf("Summary = %q, want the explicit section", s.Summary)
	}
}

func TestParseSession_MissingDate(t *testing.T) {
	text := "# Session: No date here\n\n## Summary\n\nwords\n"

	if s := ParseSession(RawDocument{Path: "undated.md", RawText: text}); s != nil {
		t.Errorf("ParseSession() = %+v, want nil without a date", s)
	}

	// A date in the filename rescues the report.
	s := ParseSession(RawDocument{Path: "2025-11-02-notes.md", RawText: text})
	if s == nil {
		t.Fatal("ParseSession() = nil, want filename date fallback")
	}
	if s.Date != "2025-11-02" {
		t.Errorf("Date = %q, want 2025-11-02 from filename", s.Date)
	}
}

func TestParseSession_NoTitle(t *testing.T) {
	if s := ParseSession(RawDocument{Path: "s.md", RawText: "**Date:** 2025-12-01\n\nprose"}); s != nil {
		t.Errorf("ParseSession() = %+v, want nil without a # title", s)
	}
}

func TestNextSectionState(t *testing.T) {
	tests := []struct {
		name  string
		state sectionState
		line  string
		want  sectionState
	}{
		{"enter summary", sectionNone, "## Summary", sectionSummary},
		{"enter accomplishments", sectionSummary, "## Accomplishments", sectionAccomplishments},
		{"enter learnings", sectionNone, "## Learnings", sectionLearnings},
		{"enter technical", sectionNone, "## Technical Notes", sectionTechnical},
		{"unknown heading resets", sectionSummary, "## Random Heading", sectionNone},
		{"plain line keeps state", sectionAccomplishments, "- a bullet", sectionAccomplishments},
		{"case-insensitive", sectionNone, "## summary", sectionSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextSectionState(tt.state, tt.line); got != tt.want {
				t.Errorf("nextSectionState(%v, %q) = %v, want %v", tt.state, tt.line, got, tt.want)
			}
		})
	}
}

func TestTimelineFromSession(t *testing.T) {
	doc := RawDocument{
		Path:    "sessions/2025-12-20-robot-wakes-up.md",
		RawText: testutil.SampleSession,
	}
	s := ParseSession(doc)
	if s == nil {
		t.Fatal("ParseSession() returned nil")
	}

	entry := TimelineFromSession(s)
	if entry.Type != TypeMilestone {
		t.Errorf("Type = %q, want milestone from a Completed outcome", entry.Type)
	}
	if !hasTag(entry.Tags, "hardware") {
		t.Errorf("Tags = %v, want hardware from the robot title", entry.Tags)
	}
	if entry.ID != s.ID || entry.Date != s.Date {
		t.Errorf("entry identity diverged from the session: %q/%q", entry.ID, entry.Date)
	}
	if entry.Summary != s.Summary {
		t.Errorf("Summary = %q, want the session summary", entry.Summary)
	}
}
