package internal

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// journalFrontmatter is the optional YAML block at the top of a journal file.
type journalFrontmatter struct {
	Title    string   `yaml:"title"`
	Date     string   `yaml:"date"`
	Tags     []string `yaml:"tags"`
	Mood     string   `yaml:"mood"`
	Timeline []string `yaml:"timeline"`
}

const (
	journalSummaryLen = 200
	wordsPerMinute    = 200
)

// ParseJournal parses a journal file. A file either holds several dated
// entries (`## YYYY-MM-DD: Title` headings) or is a single entry described by
// its frontmatter, with the filename date as a fallback. Files with no
// resolvable date produce no entries.
func ParseJournal(doc RawDocument) []JournalEntry {
	fm, body := splitJournalFrontmatter(doc.RawText)

	var entries []JournalEntry
	for _, section := range splitHeaderSections(body) {
		m := isoHeadingRe.FindStringSubmatch(section.Heading)
		if m == nil {
			continue
		}
		entries = append(entries, buildJournalEntry(strings.TrimSpace(m[2]), m[1], section.Body, fm))
	}
	if entries != nil {
		return entries
	}

	// Single-entry file: frontmatter carries the metadata.
	title := fm.Title
	if title == "" {
		if m := titleLineRe.FindStringSubmatch(body); m != nil {
			title = strings.TrimSpace(m[1])
		}
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(doc.Path), filepath.Ext(doc.Path))
	}
	date := normalizeDate(fm.Date)
	if date == "" {
		date = dateFromFilename(doc.Path)
	}
	if date == "" {
		return nil
	}
	return []JournalEntry{buildJournalEntry(title, date, body, fm)}
}

// buildJournalEntry normalizes one journal entry body.
func buildJournalEntry(title, date, content string, fm journalFrontmatter) JournalEntry {
	content = strings.TrimSpace(content)
	prose := StripCodeBlocks(content)
	cls := Classify(title, prose, "")

	mood := fm.Mood
	if mood == "" {
		mood = cls.Mood
	}

	return JournalEntry{
		Slug:           Slug(title, date),
		Title:          title,
		Date:           date,
		Summary:        truncate(firstParagraph(prose), journalSummaryLen),
		Content:        content,
		Tags:           mergeTags(fm.Tags, cls.Tags),
		Mood:           mood,
		ReadingTime:    readingTime(content),
		CodeSnippets:   ExtractCodeBlocks(content),
		LinkedTimeline: fm.Timeline,
		LinkedCommits:  ExtractCommitHashes(content),
	}
}

// splitJournalFrontmatter separates a leading YAML block between `---` fences
// from the body. Malformed or absent frontmatter degrades to an empty
// frontmatter and the whole text as body; it is never an error.
func splitJournalFrontmatter(text string) (journalFrontmatter, string) {
	var fm journalFrontmatter

	trimmed := strings.TrimLeft(text, "\n\r")
	if !strings.HasPrefix(trimmed, "---") {
		return fm, text
	}
	rest := trimmed[3:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return fm, text
	}
	if err := yaml.Unmarshal([]byte(rest[:idx]), &fm); err != nil {
		return journalFrontmatter{}, text
	}
	body := rest[idx+len("\n---"):]
	return fm, strings.TrimLeft(body, "\n\r")
}

// mergeTags combines explicit frontmatter tags with classifier tags,
// frontmatter first, deduplicated and capped.
func mergeTags(explicit, derived []string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, t := range append(append([]string{}, explicit...), derived...) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

// readingTime estimates minutes to read, never less than one.
func readingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
