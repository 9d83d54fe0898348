// Package snippet defines the snippet record and its normalization rules.
package snippet

import (
	"strings"
	"time"
)

// Snippet is a stored unit of text: code examples, notes, or cheat-sheet
// content, with optional title, tags, and a reference to a file under the
// storage files directory.
type Snippet struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	FilePath  string    `json:"file_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks invariants that must hold before a snippet is stored.
func (s *Snippet) Validate() error {
	if strings.TrimSpace(s.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// HasTag reports whether the snippet carries the given tag. The argument is
// normalized before comparison, so matching is case-insensitive.
func (s *Snippet) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeTags lowercases and trims tags, drops empties, and removes
// duplicates while preserving first-seen order. Identical tags can never
// diverge in case or whitespace after normalization.
func NormalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// ParseTags splits a comma-separated tag string and normalizes the result.
func ParseTags(s string) []string {
	if s == "" {
		return nil
	}
	return NormalizeTags(strings.Split(s, ","))
}

// JoinTags renders tags in their storage form (comma-joined).
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// TitleFromContent derives a title from the first Markdown heading, or the
// first non-empty line when no heading exists. Used when the user supplies
// no explicit title.
func TitleFromContent(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(line, "#"))
	}
	return ""
}
