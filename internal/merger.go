package internal

import (
	"sort"
	"time"
)

// MergeTimeline combines curated and generated timeline entries. Equality is
// by ID only: a generated entry whose ID matches a curated one is dropped and
// the curated record kept verbatim, never blended. Generated entries that
// collide with each other keep the first occurrence. The result is sorted by
// date, newest first.
func MergeTimeline(curated, generated []TimelineEntry) []TimelineEntry {
	seen := make(map[string]struct{}, len(curated))
	merged := make([]TimelineEntry, 0, len(curated)+len(generated))
	for _, e := range curated {
		seen[e.ID] = struct{}{}
		merged = append(merged, e)
	}
	for _, e := range generated {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		merged = append(merged, e)
	}
	SortTimeline(merged)
	return merged
}

// MergeJournal is MergeTimeline for journal entries, keyed by slug.
func MergeJournal(curated, generated []JournalEntry) []JournalEntry {
	seen := make(map[string]struct{}, len(curated))
	merged := make([]JournalEntry, 0, len(curated)+len(generated))
	for _, e := range curated {
		seen[e.Slug] = struct{}{}
		merged = append(merged, e)
	}
	for _, e := range generated {
		if _, dup := seen[e.Slug]; dup {
			continue
		}
		seen[e.Slug] = struct{}{}
		merged = append(merged, e)
	}
	SortJournal(merged)
	return merged
}

// SortTimeline orders entries by parsed date, descending. The sort is stable:
// entries sharing a date keep their pre-sort order. Unparseable dates sink to
// the end.
func SortTimeline(entries []TimelineEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return parseEntryDate(entries[i].Date).After(parseEntryDate(entries[j].Date))
	})
}

// SortJournal orders journal entries by parsed date, descending and stable.
func SortJournal(entries []JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return parseEntryDate(entries[i].Date).After(parseEntryDate(entries[j].Date))
	})
}

// SortSessions orders session reports by parsed date, descending and stable.
func SortSessions(sessions []ClaudeSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return parseEntryDate(sessions[i].Date).After(parseEntryDate(sessions[j].Date))
	})
}

// parseEntryDate parses an ISO date, returning the zero time when it does not
// parse so broken dates order last under descending sort.
func parseEntryDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}
