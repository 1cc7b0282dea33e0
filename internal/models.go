package internal

import "time"

// Dialect names, one per content subdirectory.
const (
	DialectMilestones = "milestones"
	DialectSessions   = "sessions"
	DialectStream     = "stream"
	DialectJournal    = "journal"
	DialectBlog       = "blog"
	DialectIdeas      = "ideas"
)

// Timeline entry types.
const (
	TypeBreakthrough = "breakthrough"
	TypeFailure      = "failure"
	TypeMilestone    = "milestone"
	TypeSession      = "session"
	TypeBlog         = "blog"
)

// Moods derived from entry body text.
const (
	MoodWin      = "win"
	MoodStruggle = "struggle"
	MoodExcited  = "excited"
	MoodNeutral  = "neutral"
)

// Blog draft statuses.
const (
	StatusIdea      = "idea"
	StatusDraft     = "draft"
	StatusReady     = "ready"
	StatusPublished = "published"
)

// RawDocument is one markdown file read from the content tree.
// It lives only for the duration of a parser run.
type RawDocument struct {
	Path    string
	Dialect string
	RawText string
}

// TimelineEntry is a normalized devlog event shown on the timeline.
type TimelineEntry struct {
	ID      string   `json:"id" yaml:"id"`
	Date    string   `json:"date" yaml:"date"` // ISO-8601, YYYY-MM-DD
	Title   string   `json:"title" yaml:"title"`
	Type    string   `json:"type" yaml:"type"`
	Summary string   `json:"summary" yaml:"summary"`
	Tags    []string `json:"tags" yaml:"tags"`
	Content string   `json:"content,omitempty" yaml:"content,omitempty"`
}

// JournalEntry is a long-form devlog entry.
type JournalEntry struct {
	Slug           string        `json:"slug" yaml:"slug"`
	Title          string        `json:"title" yaml:"title"`
	Date           string        `json:"date" yaml:"date"`
	Summary        string        `json:"summary" yaml:"summary"`
	Content        string        `json:"content" yaml:"content"`
	Tags           []string      `json:"tags" yaml:"tags"`
	Mood           string        `json:"mood,omitempty" yaml:"mood,omitempty"`
	ReadingTime    int           `json:"reading_time" yaml:"reading_time"`
	CodeSnippets   []CodeSnippet `json:"code_snippets,omitempty" yaml:"code_snippets,omitempty"`
	LinkedTimeline []string      `json:"linked_timeline,omitempty" yaml:"linked_timeline,omitempty"`
	LinkedCommits  []string      `json:"linked_commits,omitempty" yaml:"linked_commits,omitempty"`
}

// ClaudeSession is a structured report of one pairing session with Claude.
type ClaudeSession struct {
	ID            string        `json:"id" yaml:"id"`
	Title         string        `json:"title" yaml:"title"`
	Date          string        `json:"date" yaml:"date"`
	Goal          string        `json:"goal,omitempty" yaml:"goal,omitempty"`
	Outcome       string        `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Summary       string        `json:"summary" yaml:"summary"`
	Prompts       []string      `json:"prompts,omitempty" yaml:"prompts,omitempty"`
	CodeSnippets  []CodeSnippet `json:"code_snippets,omitempty" yaml:"code_snippets,omitempty"`
	Learnings     []string      `json:"learnings,omitempty" yaml:"learnings,omitempty"`
	LinkedFeature string        `json:"linked_feature,omitempty" yaml:"linked_feature,omitempty"`
}

// CodeSnippet is a fenced code block captured from a session or journal body.
type CodeSnippet struct {
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Content  string `json:"content" yaml:"content"`
}

// BlogDraft is a blog post in some stage of writing.
type BlogDraft struct {
	Title   string `json:"title" yaml:"title"`
	Status  string `json:"status" yaml:"status"` // idea, draft, ready, published
	Hook    string `json:"hook,omitempty" yaml:"hook,omitempty"`
	Angle   string `json:"angle,omitempty" yaml:"angle,omitempty"`
	Content string `json:"content" yaml:"content"`
}

// Snapshot is the full normalized content set produced by one sync run.
// Consumers receive it as an explicit value; nothing reads partial state.
type Snapshot struct {
	Timeline []TimelineEntry
	Journal  []JournalEntry
	Sessions []ClaudeSession
	Drafts   []BlogDraft
	SyncedAt time.Time
}
