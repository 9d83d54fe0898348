package importer

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatter is the optional YAML metadata block at the top of an imported
// Markdown file, delimited by "---" lines.
type frontMatter struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// splitFrontMatter separates an optional front-matter block from the body.
// A malformed block is left in place and treated as body text.
func splitFrontMatter(text string) (string, frontMatter) {
	var meta frontMatter

	rest, ok := strings.CutPrefix(text, "---\n")
	if !ok {
		return text, meta
	}

	block, body, ok := strings.Cut(rest, "\n---")
	if !ok {
		return text, meta
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return text, frontMatter{}
	}

	body = strings.TrimPrefix(body, "\n")
	return body, meta
}
