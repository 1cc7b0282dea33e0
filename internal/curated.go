package internal

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// curatedTimelineFile is the shape of curated/timeline.yaml.
type curatedTimelineFile struct {
	Entries []TimelineEntry `yaml:"entries"`
}

// curatedJournalFile is the shape of curated/journal.yaml.
type curatedJournalFile struct {
	Entries []JournalEntry `yaml:"entries"`
}

// LoadCuratedTimeline reads the hand-authored timeline entries that take
// precedence over generated ones during merge. A missing file is not an
// error; an unreadable or malformed file is, so curation mistakes surface
// instead of silently losing entries.
func LoadCuratedTimeline(root string) ([]TimelineEntry, error) {
	path := filepath.Join(root, "curated", "timeline.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &SourceError{Path: path, Op: "read", Err: err}
	}

	var file curatedTimelineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Dialect: "curated", Path: path, Err: err}
	}
	return file.Entries, nil
}

// LoadCuratedJournal reads the hand-authored journal entries.
func LoadCuratedJournal(root string) ([]JournalEntry, error) {
	path := filepath.Join(root, "curated", "journal.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &SourceError{Path: path, Op: "read", Err: err}
	}

	var file curatedJournalFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Dialect: "curated", Path: path, Err: err}
	}
	return file.Entries, nil
}
