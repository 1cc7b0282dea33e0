package internal

import "strings"

// ParseBlogDrafts parses a blog drafts file: one `## Title` section per draft
// with optional Status, Hook, and Angle fields. Unknown statuses fall back to
// draft.
func ParseBlogDrafts(doc RawDocument) []BlogDraft {
	var drafts []BlogDraft
	for _, section := range splitHeaderSections(doc.RawText) {
		if section.Heading == "" {
			continue
		}
		drafts = append(drafts, BlogDraft{
			Title:   section.Heading,
			Status:  normalizeDraftStatus(ExtractField(section.Body, "Status")),
			Hook:    ExtractField(section.Body, "Hook"),
			Angle:   ExtractField(section.Body, "Angle"),
			Content: section.Body,
		})
	}
	return drafts
}

// ParseIdeas parses an idea list: every bullet becomes a draft in the idea
// stage. A `Title: hook` bullet splits into title and hook.
func ParseIdeas(doc RawDocument) []BlogDraft {
	var drafts []BlogDraft
	for _, bullet := range ExtractBullets(doc.RawText) {
		title, hook := bullet, ""
		if t, h, found := strings.Cut(bullet, ": "); found {
			title, hook = strings.TrimSpace(t), strings.TrimSpace(h)
		}
		if title == "" {
			continue
		}
		drafts = append(drafts, BlogDraft{
			Title:   title,
			Status:  StatusIdea,
			Hook:    hook,
			Content: bullet,
		})
	}
	return drafts
}

// normalizeDraftStatus maps free-text status fields onto the four stages.
func normalizeDraftStatus(raw string) string {
	switch lower := strings.ToLower(raw); {
	case strings.Contains(lower, "publish"):
		return StatusPublished
	case strings.Contains(lower, "ready"):
		return StatusReady
	case strings.Contains(lower, "idea"):
		return StatusIdea
	default:
		return StatusDraft
	}
}
