// Package storage implements the snippet record store on SQLite.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/marden/snip/internal/snippet"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database connection holding snippet records.
type Store struct {
	db     *sql.DB
	closed bool
}

// selectFields is the standard field list for SELECT queries.
const selectFields = `id, title, content, tags, file_path, created_at`

// Open opens or creates the snippet database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. It is safe to call on a nil
// store, and repeated calls are no-ops.
func (s *Store) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS snippets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '',
			file_path TEXT,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_snippets_tags ON snippets(tags);
		CREATE INDEX IF NOT EXISTS idx_snippets_title ON snippets(title);
	`

	_, err := db.Exec(schema)
	return err
}

// Add persists a new snippet with a fresh id and the current timestamp.
// Tags are normalized before storage. Fails with snippet.ErrEmptyContent
// when content is empty.
func (s *Store) Add(sn snippet.Snippet) (*snippet.Snippet, error) {
	if err := sn.Validate(); err != nil {
		return nil, err
	}

	sn.Tags = snippet.NormalizeTags(sn.Tags)
	sn.CreatedAt = time.Now().UTC().Truncate(time.Second)

	res, err := s.db.Exec(`
		INSERT INTO snippets (title, content, tags, file_path, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		sn.Title, sn.Content, snippet.JoinTags(sn.Tags),
		nullableString(sn.FilePath), sn.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting snippet: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	sn.ID = id

	return &sn, nil
}

// Get retrieves a snippet by id. Returns snippet.ErrNotFound when absent.
func (s *Store) Get(id int64) (*snippet.Snippet, error) {
	row := s.db.QueryRow(`SELECT `+selectFields+` FROM snippets WHERE id = ?`, id)
	sn, err := scanSnippet(row)
	if err != nil {
		return nil, err
	}
	if sn == nil {
		return nil, fmt.Errorf("snippet %d: %w", id, snippet.ErrNotFound)
	}
	return sn, nil
}

// List returns snippets ordered most-recent-first. A positive limit caps
// the result; a non-empty tag restricts to snippets carrying it.
func (s *Store) List(limit int, tag string) ([]snippet.Snippet, error) {
	query := `SELECT ` + selectFields + ` FROM snippets`
	var args []interface{}

	if tag != "" {
		// Tags are stored comma-joined in normalized form; wrapping both
		// sides in commas makes membership a substring test.
		tag = strings.ToLower(strings.TrimSpace(tag))
		query += ` WHERE ',' || tags || ',' LIKE ?`
		args = append(args, "%,"+tag+",%")
	}

	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing snippets: %w", err)
	}
	defer rows.Close()

	return scanSnippets(rows)
}

// Search matches snippets whose title, content, or tags contain every
// whitespace-separated term of the query as a case-insensitive substring,
// ordered most-recent-first. An empty query returns all snippets.
func (s *Store) Search(query string) ([]snippet.Snippet, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return s.List(0, "")
	}

	var conds []string
	var args []interface{}
	for _, term := range terms {
		conds = append(conds, `(LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(tags) LIKE ?)`)
		pattern := "%" + term + "%"
		args = append(args, pattern, pattern, pattern)
	}

	q := `SELECT ` + selectFields + ` FROM snippets WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("searching snippets: %w", err)
	}
	defer rows.Close()

	return scanSnippets(rows)
}

// Stats aggregates counts over all stored snippets.
type Stats struct {
	Total     int            `json:"total"`
	TagCounts map[string]int `json:"tag_counts"`
}

// Stats returns the total snippet count and per-tag counts.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{TagCounts: make(map[string]int)}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM snippets`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("counting snippets: %w", err)
	}

	rows, err := s.db.Query(`SELECT tags FROM snippets WHERE tags != ''`)
	if err != nil {
		return nil, fmt.Errorf("reading tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range strings.Split(tags, ",") {
			if t != "" {
				stats.TagCounts[t]++
			}
		}
	}

	return stats, rows.Err()
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSnippet(s scanner) (*snippet.Snippet, error) {
	var sn snippet.Snippet
	var tags string
	var filePath sql.NullString
	var createdAt string

	err := s.Scan(&sn.ID, &sn.Title, &sn.Content, &tags, &filePath, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if tags != "" {
		sn.Tags = strings.Split(tags, ",")
	}
	sn.FilePath = filePath.String

	sn.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at for %d: %w", sn.ID, err)
	}

	return &sn, nil
}

func scanSnippets(rows *sql.Rows) ([]snippet.Snippet, error) {
	var out []snippet.Snippet
	for rows.Next() {
		sn, err := scanSnippet(rows)
		if err != nil {
			return nil, err
		}
		if sn != nil {
			out = append(out, *sn)
		}
	}
	return out, rows.Err()
}

// nullableString converts a string to sql.NullString, treating empty as NULL.
func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
