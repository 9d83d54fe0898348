package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/marden/snip/internal/snippet"
)

// Constants for output formatting.
const (
	ListTitleMaxLen   = 50 // Title truncation in list output
	SearchExcerptLen  = 60 // First-line excerpt length in search results
	CreatedTimeFormat = "2006-01-02 15:04"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError writes an error message to stderr and exits with the code.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// printSnippets renders a result set: JSON when requested, otherwise a
// human-readable summary list.
func printSnippets(snippets []snippet.Snippet) {
	if jsonOutput {
		if snippets == nil {
			snippets = []snippet.Snippet{}
		}
		outputJSON(snippets)
		return
	}

	if len(snippets) == 0 {
		fmt.Println("No snippets found. Use 'snip add' to create one.")
		return
	}

	fmt.Printf("%d snippets:\n\n", len(snippets))
	for _, sn := range snippets {
		printSnippetSummary(sn)
	}
}

func printSnippetSummary(sn snippet.Snippet) {
	title := sn.Title
	if title == "" {
		title = snippet.TitleFromContent(sn.Content)
	}
	fmt.Printf("  [%d] %s", sn.ID, truncateString(title, ListTitleMaxLen))
	if len(sn.Tags) > 0 {
		fmt.Printf("  (%s)", strings.Join(sn.Tags, ", "))
	}
	fmt.Println()

	if excerpt := firstLine(sn.Content); excerpt != "" && excerpt != title {
		fmt.Printf("      %s\n", truncateString(excerpt, SearchExcerptLen))
	}
	fmt.Printf("      %s\n\n", sn.CreatedAt.Local().Format(CreatedTimeFormat))
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
