package internal

import (
	"strings"
	"testing"

	"github.com/iksnae/devlog/testutil"
)

func TestParseStream(t *testing.T) {
	doc := RawDocument{
		Path:    "stream/2025-W51.md",
		Dialect: DialectStream,
		RawText: testutil.SampleStream,
	}

	entries := ParseStream(doc)
	if len(entries) != 1 {
		t.Fatalf("ParseStream() returned %d entries, want 1 (trivial notes stay out)", len(entries))
	}

	got := entries[0]
	if got.Date != "2025-12-20" {
		t.Errorf("Date = %q, want year resolved from filename", got.Date)
	}
	if got.Title != "Breakthrough: head tracking works end to end" {
		t.Errorf("Title = %q, want first sentence", got.Title)
	}
	if got.Type != TypeBreakthrough {
		t.Errorf("Type = %q, want breakthrough", got.Type)
	}
	if got.Content != "logged at 14:30" {
		t.Errorf("Content = %q, want the timestamp marker", got.Content)
	}
	if got.ID != "breakthrough-head-tracking-works-end-to-end-20251220" {
		t.Errorf("ID = %q", got.ID)
	}
}

func TestParseStream_LongNoteIsSignificant(t *testing.T) {
	long := strings.Repeat("detailed wiring notes ", 20)
	text := "## Monday, January 6\n\n**10:00** " + long + "\n"
	entries := ParseStream(RawDocument{Path: "2025-W02.md", RawText: text})
	if len(entries) != 1 {
		t.Fatalf("ParseStream() returned %d entries, want 1 for a long note", len(entries))
	}
	if entries[0].Date != "2025-01-06" {
		t.Errorf("Date = %q, want 2025-01-06", entries[0].Date)
	}
	if len(entries[0].Summary) > fallbackSummaryLen {
		t.Errorf("Summary is %d chars, want <= %d", len(entries[0].Summary), fallbackSummaryLen)
	}
}

func TestIsSignificant(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"keyword shipped", "Shipped the tracking branch today", true},
		{"keyword case-insensitive", "IT WORKS after three evenings", true},
		{"short and mundane", "Coffee, reading datasheets.", false},
		{"length alone", strings.Repeat("x", significantNoteLen+1), true},
		{"exactly at threshold", strings.Repeat("x", significantNoteLen), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSignificant(tt.text); got != tt.want {
				t.Errorf("isSignificant(%q...) = %v, want %v", truncate(tt.text, 30), got, tt.want)
			}
		})
	}
}

func TestSplitTimedNotes(t *testing.T) {
	body := "**09:15** First note text.\n\n**14:30** Second note\nthat continues.\n"
	notes := splitTimedNotes(body)
	if len(notes) != 2 {
		t.Fatalf("splitTimedNotes() returned %d notes, want 2", len(notes))
	}
	if notes[0].time != "09:15" || notes[0].text != "First note text." {
		t.Errorf("first note = %+v", notes[0])
	}
	if notes[1].time != "14:30" || notes[1].text != "Second note\nthat continues." {
		t.Errorf("second note = %+v", notes[1])
	}

	if got := splitTimedNotes("no markers in here"); got != nil {
		t.Errorf("splitTimedNotes(no markers) = %v, want nil", got)
	}
}

func TestParseDayHeading(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		want    string
		wantOK  bool
	}{
		{"full form", "Saturday, December 20", "2025-12-20", true},
		{"abbreviated month", "Sat, Dec 2", "2025-12-02", true},
		{"weekday not validated", "Blursday, December 20", "2025-12-20", true},
		{"missing comma", "Saturday December 20", "", false},
		{"bad month", "Saturday, Smarch 20", "", false},
		{"day out of range", "Saturday, December 40", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDayHeading(tt.heading, 2025)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parseDayHeading(%q) = (%q, %v), want (%q, %v)",
					tt.heading, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNoteTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first sentence", "It works. More detail follows here.", "It works"},
		{"single sentence trailing period", "Cleaned up the repo.", "Cleaned up the repo"},
		{"newlines flattened", "Breakthrough: head\ntracking works. Rest.", "Breakthrough: head tracking works"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := noteTitle(tt.text); got != tt.want {
				t.Errorf("noteTitle(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
