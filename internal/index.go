package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// IndexEntry is one row of the content index: the slice of an entry the
// list and show commands need without re-parsing the tree.
type IndexEntry struct {
	Slug    string
	Date    string
	Title   string
	Source  string // "timeline" or "journal"
	Type    string
	Mood    string
	Tags    []string
	Summary string
	Content string
}

// EntryFilter narrows an index query. Zero values match everything.
type EntryFilter struct {
	Type string
	Tag  string
}

const indexSchema = `
CREATE TABLE entries (
	slug       TEXT PRIMARY KEY,
	date       TEXT NOT NULL,
	title      TEXT NOT NULL,
	source     TEXT NOT NULL,
	entry_type TEXT,
	mood       TEXT,
	tags       TEXT,
	summary    TEXT,
	content    TEXT
)`

// OpenIndex opens (or creates) the content index database.
func OpenIndex(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &IndexError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &IndexError{Op: "ping", Err: err}
	}
	return db, nil
}

// RebuildIndex replaces the index contents with the snapshot, in one
// transaction. The previous index survives any failure.
func RebuildIndex(db *sql.DB, snapshot *Snapshot) error {
	tx, err := db.Begin()
	if err != nil {
		return &IndexError{Op: "begin", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS entries`); err != nil {
		return &IndexError{Op: "drop", Err: err}
	}
	if _, err := tx.Exec(indexSchema); err != nil {
		return &IndexError{Op: "create", Err: err}
	}

	insert := `INSERT OR REPLACE INTO entries
		(slug, date, title, source, entry_type, mood, tags, summary, content)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, e := range snapshot.Timeline {
		if _, err := tx.Exec(insert, e.ID, e.Date, e.Title, "timeline",
			e.Type, "", marshalTags(e.Tags), e.Summary, e.Content); err != nil {
			return &IndexError{Op: "insert", Err: err}
		}
	}
	for _, e := range snapshot.Journal {
		if _, err := tx.Exec(insert, e.Slug, e.Date, e.Title, "journal",
			"", e.Mood, marshalTags(e.Tags), e.Summary, e.Content); err != nil {
			return &IndexError{Op: "insert", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &IndexError{Op: "commit", Err: err}
	}
	return nil
}

// QueryEntries returns index rows matching the filter, newest first.
func QueryEntries(db *sql.DB, filter EntryFilter) ([]IndexEntry, error) {
	query := `SELECT slug, date, title, source, entry_type, mood, tags, summary, content
		FROM entries`
	var args []interface{}
	if filter.Type != "" {
		query += ` WHERE entry_type = ?`
		args = append(args, filter.Type)
	}
	query += ` ORDER BY date DESC, rowid ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, &IndexError{Op: "query", Err: err}
	}
	defer rows.Close()

	var entries []IndexEntry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		if filter.Tag != "" && !hasTag(entry.Tags, filter.Tag) {
			continue
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, &IndexError{Op: "scan", Err: err}
	}
	return entries, nil
}

// GetEntry returns the index row for a slug, or nil when absent.
func GetEntry(db *sql.DB, slug string) (*IndexEntry, error) {
	row := db.QueryRow(`SELECT slug, date, title, source, entry_type, mood, tags, summary, content
		FROM entries WHERE slug = ?`, slug)
	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// scanEntry reads one row through the given Scan function.
func scanEntry(scan func(dest ...interface{}) error) (IndexEntry, error) {
	var entry IndexEntry
	var tags string
	err := scan(&entry.Slug, &entry.Date, &entry.Title, &entry.Source,
		&entry.Type, &entry.Mood, &tags, &entry.Summary, &entry.Content)
	if err == sql.ErrNoRows {
		return entry, err
	}
	if err != nil {
		return entry, &IndexError{Op: "scan", Err: err}
	}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &entry.Tags); err != nil {
			return entry, &IndexError{Op: "scan", Err: fmt.Errorf("bad tags for %s: %w", entry.Slug, err)}
		}
	}
	return entry, nil
}

func marshalTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	data, _ := json.Marshal(tags)
	return string(data)
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
