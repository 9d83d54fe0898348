package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marden/snip/internal/config"
	"github.com/marden/snip/internal/editor"
	"github.com/marden/snip/internal/importer"
	"github.com/marden/snip/internal/snippet"
)

var (
	addTitle string
	addTags  string
)

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Snippet title (default: first heading of the content)")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Compose a new snippet in your editor",
	Long: `Compose a new snippet in your editor ($VISUAL, then $EDITOR).

The snippet is stored when you save non-empty content and close the
editor. Closing without changes cancels the operation.

Examples:
  snip add
  snip add --title "Git rebase" --tags git,vcs`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	layout, st := openStorage()
	defer st.Close()

	ed := editor.New(config.FallbackEditor())
	content, err := ed.Compose(addTemplate(addTitle))
	if err != nil {
		exitWithError(ExitEditorError, "%v", err)
	}
	if content == "" {
		fmt.Println("Cancelled: no content added.")
		return nil
	}

	title := addTitle
	if title == "" {
		title = snippet.TitleFromContent(content)
	}

	path, err := importer.StoreBody(layout, slugify(title)+".md", content)
	if err != nil {
		exitWithError(ExitStorageError, "%v", err)
	}

	sn, err := st.Add(snippet.Snippet{
		Title:    title,
		Content:  content,
		Tags:     snippet.ParseTags(addTags),
		FilePath: path,
	})
	if err != nil {
		exitWithError(ExitError, "storing snippet: %v", err)
	}

	if jsonOutput {
		return outputJSON(sn)
	}
	fmt.Printf("Created snippet %d: %s\n", sn.ID, sn.Title)
	return nil
}

// addTemplate seeds the editor buffer. The template counts as unchanged
// content, so saving it untouched cancels the add.
func addTemplate(title string) string {
	if title == "" {
		title = "Title"
	}
	return fmt.Sprintf(`# %s

## Example

`+"```"+`
// Write your code examples here
`+"```"+`

## Notes

- Add gotchas or reminders here
`, title)
}

// slugify builds a safe filename stem from a title.
func slugify(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "snippet"
	}
	return sb.String()
}
