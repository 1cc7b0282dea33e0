package internal

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoHeadingRe      = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}):\s*(.+)$`)
	monthDayHeadingRe = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2}):\s*(.+)$`)
	filenameYearRe    = regexp.MustCompile(`(20\d{2})`)
)

const fallbackSummaryLen = 300

// ParseMilestones parses a milestones file: one `## ` block per milestone,
// headed by either `YYYY-MM-DD: Title` or `Month Day: Title` (year taken from
// the filename). Every matched header produces exactly one entry; blocks with
// no structured fields fall back to the first 300 characters of the body.
func ParseMilestones(doc RawDocument) []TimelineEntry {
	defaultYear := yearFromFilename(doc.Path)

	var entries []TimelineEntry
	for _, section := range splitHeaderSections(doc.RawText) {
		date, title, ok := parseMilestoneHeading(section.Heading, defaultYear)
		if !ok {
			continue
		}

		whatHappened := ExtractField(section.Body, "What happened")
		whyItMatters := ExtractField(section.Body, "Why it matters")
		theMoment := ExtractField(section.Body, "The moment")

		// The fallback always applies when no field was found, so a bare
		// narrative block still becomes an entry.
		if whatHappened == "" {
			flat := strings.Join(strings.Fields(section.Body), " ")
			whatHappened = truncate(flat, fallbackSummaryLen)
		}
		if whatHappened == "" {
			whatHappened = title
		}

		var content []string
		if whyItMatters != "" {
			content = append(content, whyItMatters)
		}
		if theMoment != "" {
			content = append(content, theMoment)
		}
		if hashes := ExtractCommitHashes(section.Body); len(hashes) > 0 {
			content = append(content, "commit "+hashes[0])
		}

		cls := Classify(title, section.Body, "")
		entries = append(entries, TimelineEntry{
			ID:      Slug(title, date),
			Date:    date,
			Title:   title,
			Type:    cls.Type,
			Summary: whatHappened,
			Tags:    cls.Tags,
			Content: strings.Join(content, "\n\n"),
		})
	}
	return entries
}

// parseMilestoneHeading extracts the date and title from a milestone heading.
func parseMilestoneHeading(heading string, defaultYear int) (date, title string, ok bool) {
	if m := isoHeadingRe.FindStringSubmatch(heading); m != nil {
		if _, err := time.Parse("2006-01-02", m[1]); err != nil {
			return "", "", false
		}
		return m[1], strings.TrimSpace(m[2]), true
	}
	if m := monthDayHeadingRe.FindStringSubmatch(heading); m != nil {
		month, ok := monthNumber(m[1])
		if !ok {
			return "", "", false
		}
		day, err := strconv.Atoi(m[2])
		if err != nil || day < 1 || day > 31 {
			return "", "", false
		}
		return fmt.Sprintf("%04d-%02d-%02d", defaultYear, month, day), strings.TrimSpace(m[3]), true
	}
	return "", "", false
}

// monthNumber resolves a full or three-letter English month name.
func monthNumber(name string) (int, bool) {
	name = strings.ToLower(name)
	if len(name) < 3 {
		return 0, false
	}
	for i := time.January; i <= time.December; i++ {
		full := strings.ToLower(i.String())
		if name == full || name == full[:3] {
			return int(i), true
		}
	}
	return 0, false
}

// yearFromFilename pulls a four-digit year out of the file name, falling back
// to the current year for undated files.
func yearFromFilename(path string) int {
	if m := filenameYearRe.FindStringSubmatch(filepath.Base(path)); m != nil {
		year, _ := strconv.Atoi(m[1])
		return year
	}
	return time.Now().Year()
}
