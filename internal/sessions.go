package internal

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	titleLineRe    = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	filenameDateRe = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
)

// sectionState is the scanner position inside a session report. Any `## `
// heading moves the machine; unrecognized headings reset it to sectionNone.
type sectionState int

const (
	sectionNone sectionState = iota
	sectionSummary
	sectionAccomplishments
	sectionLearnings
	sectionPrompts
	sectionTechnical
)

// nextSectionState is the pure transition function for the section scanner.
// Non-heading lines keep the current state.
func nextSectionState(state sectionState, line string) sectionState {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "## ") {
		return state
	}
	switch strings.ToLower(strings.TrimSpace(trimmed[3:])) {
	case "summary":
		return sectionSummary
	case "accomplishments":
		return sectionAccomplishments
	case "learnings":
		return sectionLearnings
	case "prompts":
		return sectionPrompts
	case "technical notes", "technical":
		return sectionTechnical
	default:
		return sectionNone
	}
}

// ParseSession parses a single-document session report. The title comes from
// the first `# ` heading with an optional `Session:` prefix stripped. A report
// without a resolvable date is rejected outright and yields nil; this is the
// only hard rejection in the pipeline.
func ParseSession(doc RawDocument) *ClaudeSession {
	m := titleLineRe.FindStringSubmatch(doc.RawText)
	if m == nil {
		return nil
	}
	title := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(m[1]), "Session:"))

	date := normalizeDate(ExtractField(doc.RawText, "Date"))
	if date == "" {
		date = dateFromFilename(doc.Path)
	}
	if date == "" {
		return nil
	}

	var (
		state        sectionState
		summaryLines []string
		accomplished []string
		learnings    []string
		prompts      []string
	)
	for _, line := range strings.Split(doc.RawText, "\n") {
		state = nextSectionState(state, line)
		if strings.HasPrefix(strings.TrimSpace(line), "## ") {
			continue
		}
		switch state {
		case sectionSummary:
			if t := strings.TrimSpace(line); t != "" {
				summaryLines = append(summaryLines, t)
			}
		case sectionAccomplishments:
			if bm := bulletLineRe.FindStringSubmatch(line); bm != nil {
				accomplished = append(accomplished, strings.TrimSpace(bm[1]))
			}
		case sectionLearnings:
			if bm := bulletLineRe.FindStringSubmatch(line); bm != nil {
				learnings = append(learnings, strings.TrimSpace(bm[1]))
			}
		case sectionPrompts:
			if bm := bulletLineRe.FindStringSubmatch(line); bm != nil {
				prompts = append(prompts, strings.TrimSpace(bm[1]))
			}
		}
	}

	summary := strings.Join(summaryLines, " ")
	if summary == "" {
		summary = strings.Join(accomplished, "; ")
	}
	if summary == "" {
		summary = title
	}

	return &ClaudeSession{
		ID:            Slug(title, date),
		Title:         title,
		Date:          date,
		Goal:          ExtractField(doc.RawText, "Goal"),
		Outcome:       ExtractField(doc.RawText, "Status"),
		Summary:       summary,
		Prompts:       prompts,
		CodeSnippets:  ExtractCodeBlocks(doc.RawText),
		Learnings:     learnings,
		LinkedFeature: ExtractField(doc.RawText, "Feature"),
	}
}

// TimelineFromSession promotes a session report onto the timeline. The outcome
// is folded into the classified text so a "Completed" status registers as a
// milestone.
func TimelineFromSession(s *ClaudeSession) TimelineEntry {
	cls := Classify(s.Title, s.Summary+" "+s.Outcome, s.Outcome)
	var content []string
	if s.Goal != "" {
		content = append(content, "Goal: "+s.Goal)
	}
	if len(s.Learnings) > 0 {
		content = append(content, strings.Join(s.Learnings, "\n"))
	}
	return TimelineEntry{
		ID:      s.ID,
		Date:    s.Date,
		Title:   s.Title,
		Type:    cls.Type,
		Summary: s.Summary,
		Tags:    cls.Tags,
		Content: strings.Join(content, "\n\n"),
	}
}

// normalizeDate accepts the date spellings that show up in hand-written logs
// and returns canonical YYYY-MM-DD, or "" when nothing parses.
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", "January 2, 2006", "Jan 2, 2006", "2006/01/02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// dateFromFilename recovers a date from names like 2025-12-20-robot-wakes.md.
func dateFromFilename(path string) string {
	if m := filenameDateRe.FindStringSubmatch(filepath.Base(path)); m != nil {
		if _, err := time.Parse("2006-01-02", m[1]); err == nil {
			return m[1]
		}
	}
	return ""
}
