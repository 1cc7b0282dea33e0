package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	dayHeadingRe      = regexp.MustCompile(`^([A-Za-z]+),\s+([A-Za-z]+)\s+(\d{1,2})$`)
	timestampMarkerRe = regexp.MustCompile(`\*\*(\d{1,2}:\d{2})\*\*`)
)

// significantKeywords promote a stream note onto the timeline regardless of
// its length.
var significantKeywords = []string{
	"mvp complete",
	"shipped",
	"breakthrough",
	"first time",
	"finally",
	"it works",
	"working end to end",
	"launched",
	"deployed",
}

// A note longer than this is treated as significant on length alone.
const significantNoteLen = 300

// ParseStream parses a weekly stream-of-consciousness file (2025-W12.md).
// Days are `## Weekday, Month Day` headings resolved against the year in the
// filename; notes are `**HH:MM**` markers with their trailing text. Only
// significant notes become timeline entries.
func ParseStream(doc RawDocument) []TimelineEntry {
	year := yearFromFilename(doc.Path)

	var entries []TimelineEntry
	for _, section := range splitHeaderSections(doc.RawText) {
		date, ok := parseDayHeading(section.Heading, year)
		if !ok {
			continue
		}
		for _, note := range splitTimedNotes(section.Body) {
			if !isSignificant(note.text) {
				continue
			}
			title := noteTitle(note.text)
			cls := Classify(title, note.text, "")
			entries = append(entries, TimelineEntry{
				ID:      Slug(title, date),
				Date:    date,
				Title:   title,
				Type:    cls.Type,
				Summary: truncate(strings.Join(strings.Fields(note.text), " "), fallbackSummaryLen),
				Tags:    cls.Tags,
				Content: "logged at " + note.time,
			})
		}
	}
	return entries
}

// timedNote is one `**HH:MM**` note within a day.
type timedNote struct {
	time string
	text string
}

// splitTimedNotes cuts a day body at each timestamp marker. A note runs to
// the next marker, the next heading, or a double blank line.
func splitTimedNotes(body string) []timedNote {
	locs := timestampMarkerRe.FindAllStringSubmatchIndex(body, -1)
	var notes []timedNote
	for i, loc := range locs {
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		text := body[loc[1]:end]
		if cut := strings.Index(text, "\n\n\n"); cut >= 0 {
			text = text[:cut]
		}
		if cut := strings.Index(text, "\n#"); cut >= 0 {
			text = text[:cut]
		}
		text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "-"))
		if text == "" {
			continue
		}
		notes = append(notes, timedNote{time: body[loc[2]:loc[3]], text: strings.TrimSpace(text)})
	}
	return notes
}

// isSignificant applies the promotion heuristics: keyword allow-list first,
// then the length threshold.
func isSignificant(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range significantKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return len(text) > significantNoteLen
}

// noteTitle derives a short title from the first sentence of a note.
func noteTitle(text string) string {
	flat := strings.Join(strings.Fields(text), " ")
	if i := strings.Index(flat, ". "); i > 0 {
		flat = flat[:i]
	}
	return truncate(strings.TrimSuffix(flat, "."), 80)
}

// parseDayHeading resolves `Weekday, Month Day` to an ISO date in the given
// year. The weekday name is decorative and not validated.
func parseDayHeading(heading string, year int) (string, bool) {
	m := dayHeadingRe.FindStringSubmatch(heading)
	if m == nil {
		return "", false
	}
	month, ok := monthNumber(m[2])
	if !ok {
		return "", false
	}
	day, err := strconv.Atoi(m[3])
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
