// Package importer turns existing files into snippet records.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marden/snip/internal/config"
	"github.com/marden/snip/internal/pdf"
	"github.com/marden/snip/internal/snippet"
	"github.com/marden/snip/internal/storage"
)

// Options carry explicit metadata for an import. Explicit values win over
// anything found in front matter; front matter wins over filename defaults.
type Options struct {
	Title string
	Tags  []string
}

// Import reads the file at path, copies its body under the files directory,
// and stores a snippet referencing the copy. Missing paths surface
// snippet.ErrNotFound; unreadable files surface the wrapped read error.
func Import(st *storage.Store, layout config.Layout, path string, opts Options) (*snippet.Snippet, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("import %s: %w", path, snippet.ErrNotFound)
		}
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("import %s: is a directory", path)
	}

	content, meta, err := readSource(path)
	if err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = meta.Title
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	tags := opts.Tags
	if len(tags) == 0 {
		tags = meta.Tags
	}

	stored, err := copyToFiles(layout, path, content)
	if err != nil {
		return nil, err
	}

	sn, err := st.Add(snippet.Snippet{
		Title:    title,
		Content:  content,
		Tags:     tags,
		FilePath: stored,
	})
	if err != nil {
		// The copy is not rolled back; records own their files, orphans
		// are harmless.
		return nil, err
	}
	return sn, nil
}

// readSource loads the file body. PDFs are reduced to their plain text;
// everything else is treated as text with optional YAML front matter.
func readSource(path string) (string, frontMatter, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := pdf.ExtractText(path)
		if err != nil {
			return "", frontMatter{}, fmt.Errorf("reading %s: %w", path, err)
		}
		return text, frontMatter{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", frontMatter{}, fmt.Errorf("reading %s: %w", path, err)
	}

	body, meta := splitFrontMatter(string(data))
	return body, meta, nil
}

// copyToFiles writes content into the files directory under the source's
// base name. PDFs are stored as the extracted Markdown text.
func copyToFiles(layout config.Layout, src, content string) (string, error) {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if strings.EqualFold(ext, ".pdf") {
		ext = ".md"
	}
	return StoreBody(layout, stem+ext, content)
}

// StoreBody writes a snippet body into the files directory under the given
// name, suffixing _1, _2, ... on collision so nothing is overwritten.
// Returns the path of the stored file.
func StoreBody(layout config.Layout, name, content string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	dst := filepath.Join(layout.FilesDir(), name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			break
		}
		dst = filepath.Join(layout.FilesDir(), fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}

	if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", dst, err)
	}
	return dst, nil
}
