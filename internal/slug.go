package internal

import (
	"regexp"
	"strings"
)

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

const maxSlugTitleLen = 50

// Slug derives a stable URL-safe identifier from a title and an ISO date.
// The title part is lowercased, reduced to [a-z0-9-], and truncated to 50
// characters; the date is appended with its dashes removed. Two entries with
// the same title and date collide on purpose; the merger resolves those.
func Slug(title, date string) string {
	s := strings.ToLower(title)
	s = nonSlugRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugTitleLen {
		s = s[:maxSlugTitleLen]
		s = strings.TrimRight(s, "-")
	}
	return s + "-" + strings.ReplaceAll(date, "-", "")
}
