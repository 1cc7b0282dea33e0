package internal

import (
	"regexp"
	"strings"
)

// Classification is the derived metadata for one entry.
type Classification struct {
	Type string
	Mood string
	Tags []string
}

// typeRule pairs a predicate with the entry type it implies. Rules are
// evaluated top to bottom and the first match wins; later rules are never
// consulted once one fires.
type typeRule struct {
	match  func(text, status string) bool
	result string
}

var typeRules = []typeRule{
	{textContains("first", "breakthrough"), TypeBreakthrough},
	{textContains("fail", "block", "dead end"), TypeFailure},
	{textContains("launch", "deploy", "complete", "shipped", "accepted"), TypeMilestone},
	{func(_, status string) bool { return strings.Contains(status, "block") }, TypeFailure},
}

// moodRule pairs a predicate over the body text with a mood.
type moodRule struct {
	keywords []string
	result   string
}

var moodRules = []moodRule{
	{[]string{"finally", "success", "fixed"}, MoodWin},
	{[]string{"failed", "blocked", "frustrat"}, MoodStruggle},
	{[]string{"exciting", "breakthrough", "first"}, MoodExcited},
}

// tagPattern maps a category to the pattern that selects it. The slice order
// is the output order; tags are never frequency-ranked.
type tagPattern struct {
	name string
	re   *regexp.Regexp
}

var tagPatterns = []tagPattern{
	{"hardware", regexp.MustCompile(`(?i)hardware|robot|servo|motor|antenna|reachy`)},
	{"vision", regexp.MustCompile(`(?i)vision|camera|face|detect|head pose`)},
	{"motion", regexp.MustCompile(`(?i)motion|animation|gesture|movement|choreograph`)},
	{"audio", regexp.MustCompile(`(?i)audio|music|sound|voice|speech|beat`)},
	{"ai", regexp.MustCompile(`(?i)\bllm\b|claude|gpt|prompt|agent|model`)},
	{"web", regexp.MustCompile(`(?i)website|astro|frontend|component|deploy`)},
	{"simulation", regexp.MustCompile(`(?i)\bsim\b|simulation|mujoco`)},
}

const maxTags = 6

// Classify derives type, mood, and tags from an entry's title and body.
// It is a pure function: identical input always yields identical output.
func Classify(title, body, status string) Classification {
	text := strings.ToLower(title + " " + body)
	lowerStatus := strings.ToLower(status)

	entryType := TypeSession
	for _, rule := range typeRules {
		if rule.match(text, lowerStatus) {
			entryType = rule.result
			break
		}
	}

	lowerBody := strings.ToLower(body)
	mood := MoodNeutral
	for _, rule := range moodRules {
		if containsAny(lowerBody, rule.keywords) {
			mood = rule.result
			break
		}
	}

	var tags []string
	for _, tp := range tagPatterns {
		if len(tags) == maxTags {
			break
		}
		if tp.re.MatchString(text) {
			tags = append(tags, tp.name)
		}
	}

	return Classification{Type: entryType, Mood: mood, Tags: tags}
}

// textContains builds a predicate matching any of the given keywords in the
// combined title+body text.
func textContains(keywords ...string) func(text, status string) bool {
	return func(text, _ string) bool {
		return containsAny(text, keywords)
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
