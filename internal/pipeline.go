package internal

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Pipeline ingests the devlog content tree and produces a Snapshot. It is
// single-threaded and side-effect free apart from console diagnostics; all
// writing happens in later stages so a failed run never leaves partial output.
type Pipeline struct {
	Root string
	Now  func() time.Time
}

// NewPipeline creates a pipeline rooted at the content directory.
func NewPipeline(root string) *Pipeline {
	return &Pipeline{Root: root, Now: time.Now}
}

// Run parses every source directory, applies curated precedence, and returns
// the sorted snapshot. A missing content root is a soft no-op: Run logs a
// notice and returns (nil, nil) so prior output stays in place.
func (p *Pipeline) Run() (*Snapshot, error) {
	if _, err := os.Stat(p.Root); err != nil {
		LogInfo("content root %s not found, nothing to sync", p.Root)
		return nil, nil
	}

	var generated []TimelineEntry
	for _, doc := range p.readDialect(DialectMilestones) {
		generated = append(generated, ParseMilestones(doc)...)
	}
	for _, doc := range p.readDialect(DialectStream) {
		generated = append(generated, ParseStream(doc)...)
	}

	var sessions []ClaudeSession
	for _, doc := range p.readDialect(DialectSessions) {
		s := ParseSession(doc)
		if s == nil {
			continue
		}
		sessions = append(sessions, *s)
		generated = append(generated, TimelineFromSession(s))
	}

	var journal []JournalEntry
	for _, doc := range p.readDialect(DialectJournal) {
		journal = append(journal, ParseJournal(doc)...)
	}

	var drafts []BlogDraft
	for _, doc := range p.readDialect(DialectBlog) {
		drafts = append(drafts, ParseBlogDrafts(doc)...)
	}
	for _, doc := range p.readDialect(DialectIdeas) {
		drafts = append(drafts, ParseIdeas(doc)...)
	}

	curatedTimeline, err := LoadCuratedTimeline(p.Root)
	if err != nil {
		return nil, err
	}
	curatedJournal, err := LoadCuratedJournal(p.Root)
	if err != nil {
		return nil, err
	}

	SortSessions(sessions)
	return &Snapshot{
		Timeline: MergeTimeline(curatedTimeline, generated),
		Journal:  MergeJournal(curatedJournal, journal),
		Sessions: sessions,
		Drafts:   drafts,
		SyncedAt: p.Now().UTC(),
	}, nil
}

// readDialect reads every markdown file in one content subdirectory, in
// directory listing order. I/O failures degrade to zero documents for that
// source with a console warning; the rest of the run proceeds.
func (p *Pipeline) readDialect(dialect string) []RawDocument {
	dir := filepath.Join(p.Root, dialect)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			LogWarn("%v", &SourceError{Path: dir, Op: "scan", Err: err})
		}
		return nil
	}

	var docs []RawDocument
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			LogWarn("%v", &SourceError{Path: path, Op: "read", Err: err})
			continue
		}
		docs = append(docs, RawDocument{Path: path, Dialect: dialect, RawText: string(data)})
	}
	return docs
}
