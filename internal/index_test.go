package internal

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/iksnae/devlog/testutil"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Timeline: []TimelineEntry{
			{ID: "first-servo-motion-20251220", Date: "2025-12-20", Title: "First servo motion",
				Type: TypeBreakthrough, Tags: []string{"hardware"}, Summary: "it moved"},
			{ID: "vision-pipeline-online-20251218", Date: "2025-12-18", Title: "Vision pipeline online",
				Type: TypeMilestone, Tags: []string{"vision"}, Summary: "faces at 15 fps"},
		},
		Journal: []JournalEntry{
			{Slug: "the-day-it-moved-20251220", Date: "2025-12-20", Title: "The day it moved",
				Mood: MoodExcited, Tags: []string{"hardware"}, Summary: "big day"},
		},
	}
}

func openTestIndex(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenIndex(filepath.Join(testutil.CreateTempDir(t), "devlog.db"))
	if err != nil {
		t.Fatalf("OpenIndex() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := RebuildIndex(db, testSnapshot()); err != nil {
		t.Fatalf("RebuildIndex() error: %v", err)
	}
	return db
}

func TestRebuildAndQuery(t *testing.T) {
	db := openTestIndex(t)

	entries, err := QueryEntries(db, EntryFilter{})
	if err != nil {
		t.Fatalf("QueryEntries() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("QueryEntries() returned %d rows, want 3", len(entries))
	}
	if entries[0].Date != "2025-12-20" {
		t.Errorf("first row date = %q, want newest first", entries[0].Date)
	}
	if entries[len(entries)-1].Slug != "vision-pipeline-online-20251218" {
		t.Errorf("last row = %q, want the oldest entry", entries[len(entries)-1].Slug)
	}
}

func TestQueryEntries_TypeFilter(t *testing.T) {
	db := openTestIndex(t)

	entries, err := QueryEntries(db, EntryFilter{Type: TypeMilestone})
	if err != nil {
		t.Fatalf("QueryEntries() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Slug != "vision-pipeline-online-20251218" {
		t.Errorf("entries = %+v, want only the milestone", entries)
	}
}

func TestQueryEntries_TagFilter(t *testing.T) {
	db := openTestIndex(t)

	entries, err := QueryEntries(db, EntryFilter{Tag: "hardware"})
	if err != nil {
		t.Fatalf("QueryEntries() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("QueryEntries(tag=hardware) returned %d rows, want 2", len(entries))
	}
	for _, e := range entries {
		if !hasTag(e.Tags, "hardware") {
			t.Errorf("entry %q lacks the hardware tag: %v", e.Slug, e.Tags)
		}
	}
}

func TestGetEntry(t *testing.T) {
	db := openTestIndex(t)

	entry, err := GetEntry(db, "the-day-it-moved-20251220")
	if err != nil {
		t.Fatalf("GetEntry() error: %v", err)
	}
	if entry == nil {
		t.Fatal("GetEntry() = nil for an indexed slug")
	}
	if entry.Source != "journal" || entry.Mood != MoodExcited {
		t.Errorf("entry = %+v", entry)
	}

	missing, err := GetEntry(db, "nope")
	if err != nil {
		t.Fatalf("GetEntry(missing) error: %v", err)
	}
	if missing != nil {
		t.Errorf("GetEntry(missing) = %+v, want nil", missing)
	}
}

func TestRebuildIndex_Replaces(t *testing.T) {
	db := openTestIndex(t)

	if err := RebuildIndex(db, &Snapshot{
		Timeline: []TimelineEntry{{ID: "only-one-20250101", Date: "2025-01-01", Title: "Only one"}},
	}); err != nil {
		t.Fatalf("RebuildIndex() error: %v", err)
	}

	entries, err := QueryEntries(db, EntryFilter{})
	if err != nil {
		t.Fatalf("QueryEntries() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Slug != "only-one-20250101" {
		t.Errorf("entries = %+v, want the old rows gone", entries)
	}
}
