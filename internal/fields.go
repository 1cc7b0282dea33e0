package internal

import (
	"regexp"
	"strings"
)

var (
	fieldLineRe  = regexp.MustCompile(`^\s*\*\*([A-Za-z][A-Za-z0-9 '/-]*):\*\*\s*(.*)$`)
	commitRe     = regexp.MustCompile("`([0-9a-f]{7,40})`")
	codeBlockRe  = regexp.MustCompile("(?s)```([A-Za-z0-9+-]*)\\n(.*?)```")
	bulletLineRe = regexp.MustCompile(`^\s*[-*]\s+(.+)$`)
)

// ExtractField returns the value of the first `**Label:**` field in block.
// The value runs from the rest of the label line until the next field label,
// section heading, rule, or blank line; continuation lines are joined with a
// single space. A missing label yields ""; fields are optional everywhere.
func ExtractField(block, label string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		m := fieldLineRe.FindStringSubmatch(line)
		if m == nil || !strings.EqualFold(strings.TrimSpace(m[1]), label) {
			continue
		}

		var parts []string
		if v := strings.TrimSpace(m[2]); v != "" {
			parts = append(parts, v)
		}
		for j := i + 1; j < len(lines); j++ {
			if isFieldBoundary(lines[j]) {
				break
			}
			parts = append(parts, strings.TrimSpace(lines[j]))
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// ExtractSection returns the body under a `## Heading` line, up to the next
// `## ` heading. Line breaks inside the body are preserved. Missing heading
// yields "".
func ExtractSection(block, heading string) string {
	lines := strings.Split(block, "\n")
	var body []string
	inSection := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "## ") {
			if inSection {
				break
			}
			if strings.EqualFold(strings.TrimSpace(trimmed[3:]), heading) {
				inSection = true
			}
			continue
		}
		if inSection {
			body = append(body, line)
		}
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}

// ExtractBullets returns the text of every `- ` or `* ` list item in block,
// in order.
func ExtractBullets(block string) []string {
	var items []string
	for _, line := range strings.Split(block, "\n") {
		if m := bulletLineRe.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
		}
	}
	return items
}

// ExtractCommitHashes returns every backticked hex token that looks like a
// git commit hash, deduplicated in order of appearance.
func ExtractCommitHashes(text string) []string {
	seen := make(map[string]struct{})
	var hashes []string
	for _, m := range commitRe.FindAllStringSubmatch(text, -1) {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		hashes = append(hashes, m[1])
	}
	return hashes
}

// ExtractCodeBlocks returns every fenced code block in text with its language
// hint, in order of appearance.
func ExtractCodeBlocks(text string) []CodeSnippet {
	var blocks []CodeSnippet
	for _, m := range codeBlockRe.FindAllStringSubmatch(text, -1) {
		content := strings.TrimRight(m[2], "\n")
		if content == "" {
			continue
		}
		blocks = append(blocks, CodeSnippet{Language: m[1], Content: content})
	}
	return blocks
}

// StripCodeBlocks removes fenced code blocks from text, leaving prose only.
func StripCodeBlocks(text string) string {
	return strings.TrimSpace(codeBlockRe.ReplaceAllString(text, ""))
}

// headerSection is one `## ` block: the heading text and the body below it.
type headerSection struct {
	Heading string
	Body    string
}

var sectionSplitRe = regexp.MustCompile(`(?m)^##\s+`)

// splitHeaderSections splits text on `## ` headings. Text before the first
// heading is discarded; a document with no headings yields nil.
func splitHeaderSections(text string) []headerSection {
	chunks := sectionSplitRe.Split(text, -1)
	if len(chunks) < 2 {
		return nil
	}
	sections := make([]headerSection, 0, len(chunks)-1)
	for _, chunk := range chunks[1:] {
		heading, body, _ := strings.Cut(chunk, "\n")
		sections = append(sections, headerSection{
			Heading: strings.TrimSpace(heading),
			Body:    strings.TrimSpace(body),
		})
	}
	return sections
}

// isFieldBoundary reports whether a line ends a multi-line field value:
// another field label, a heading, a horizontal rule, or a blank line.
func isFieldBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed == "---" {
		return true
	}
	if strings.HasPrefix(trimmed, "#") {
		return true
	}
	return fieldLineRe.MatchString(line)
}

// firstParagraph returns the first non-heading paragraph of text.
func firstParagraph(text string) string {
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" || strings.HasPrefix(para, "#") {
			continue
		}
		return strings.Join(strings.Fields(para), " ")
	}
	return ""
}

// truncate shortens s to at most n characters without splitting mid-word
// unless a single word exceeds the limit.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
