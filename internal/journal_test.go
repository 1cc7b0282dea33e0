package internal

import (
	"reflect"
	"strings"
	"testing"

	"github.com/iksnae/devlog/testutil"
)

func TestParseJournal(t *testing.T) {
	doc := RawDocument{
		Path:    "journal/2025-12.md",
		Dialect: DialectJournal,
		RawText: testutil.SampleJournal,
	}

	entries := ParseJournal(doc)
	if len(entries) != 1 {
		t.Fatalf("ParseJournal() returned %d entries, want 1", len(entries))
	}

	got := entries[0]
	if got.Slug != "the-day-it-moved-20251220" {
		t.Errorf("Slug = %q", got.Slug)
	}
	if got.Title != "The day it moved" || got.Date != "2025-12-20" {
		t.Errorf("identity = %q/%q", got.Title, got.Date)
	}
	if got.Mood != "excited" {
		t.Errorf("Mood = %q, want frontmatter mood to win", got.Mood)
	}
	if len(got.Tags) == 0 || got.Tags[0] != "hardware" {
		t.Errorf("Tags = %v, want frontmatter tags first", got.Tags)
	}
	if !strings.HasPrefix(got.Summary, "I have been waiting") {
		t.Errorf("Summary = %q, want the first paragraph", got.Summary)
	}
	if strings.Contains(got.Summary, "set_target") {
		t.Errorf("Summary = %q, code must be stripped before summarizing", got.Summary)
	}
	if len(got.CodeSnippets) != 1 || got.CodeSnippets[0].Language != "python" {
		t.Errorf("CodeSnippets = %+v, want the python block", got.CodeSnippets)
	}
	if !reflect.DeepEqual(got.LinkedCommits, []string{"deadbee"}) {
		t.Errorf("LinkedCommits = %v", got.LinkedCommits)
	}
	if got.ReadingTime != 1 {
		t.Errorf("ReadingTime = %d, want minimum of 1", got.ReadingTime)
	}
}

func TestParseJournal_SingleEntryFallbacks(t *testing.T) {
	text := "Just prose with no headings and no frontmatter at all.\n"

	// Date from the filename, title from the filename stem.
	entries := ParseJournal(RawDocument{Path: "journal/2025-11-05.md", RawText: text})
	if len(entries) != 1 {
		t.Fatalf("ParseJournal() returned %d entries, want 1", len(entries))
	}
	if entries[0].Date != "2025-11-05" {
		t.Errorf("Date = %q, want filename date", entries[0].Date)
	}
	if entries[0].Title != "2025-11-05" {
		t.Errorf("Title = %q, want filename stem", entries[0].Title)
	}

	// No date anywhere drops the file.
	if got := ParseJournal(RawDocument{Path: "journal/notes.md", RawText: text}); got != nil {
		t.Errorf("ParseJournal(dateless) = %v, want nil", got)
	}
}

func TestSplitJournalFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantMood string
		wantBody string
	}{
		{
			name:     "well-formed block",
			text:     "---\nmood: win\n---\nbody text",
			wantMood: "win",
			wantBody: "body text",
		},
		{
			name:     "no frontmatter",
			text:     "just a body",
			wantMood: "",
			wantBody: "just a body",
		},
		{
			name:     "unterminated fence keeps everything",
			text:     "---\nmood: win\nbody text",
			wantMood: "",
			wantBody: "---\nmood: win\nbody text",
		},
		{
			name:     "malformed yaml degrades to body",
			text:     "---\nmood: [unclosed\n---\nbody text",
			wantMood: "",
			wantBody: "---\nmood: [unclosed\n---\nbody text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := splitJournalFrontmatter(tt.text)
			if fm.Mood != tt.wantMood {
				t.Errorf("mood = %q, want %q", fm.Mood, tt.wantMood)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestMergeTags(t *testing.T) {
	tests := []struct {
		name     string
		explicit []string
		derived  []string
		want     []string
	}{
		{
			name:     "explicit first then derived",
			explicit: []string{"hardware"},
			derived:  []string{"vision", "hardware"},
			want:     []string{"hardware", "vision"},
		},
		{
			name:     "lowercased and trimmed",
			explicit: []string{" Hardware ", "AI"},
			derived:  nil,
			want:     []string{"hardware", "ai"},
		},
		{
			name:     "capped at six",
			explicit: []string{"a", "b", "c", "d", "e", "f", "g"},
			derived:  []string{"h"},
			want:     []string{"a", "b", "c", "d", "e", "f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergeTags(tt.explicit, tt.derived); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mergeTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadingTime(t *testing.T) {
	if got := readingTime(""); got != 1 {
		t.Errorf("readingTime(empty) = %d, want 1", got)
	}
	if got := readingTime(strings.Repeat("word ", 450)); got != 3 {
		t.Errorf("readingTime(450 words) = %d, want 3", got)
	}
}
