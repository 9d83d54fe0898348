package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marden/snip/internal/importer"
	"github.com/marden/snip/internal/snippet"
)

var (
	importTitle string
	importTags  string
)

func init() {
	importFileCmd.Flags().StringVar(&importTitle, "title", "", "Snippet title (default: front matter, then filename)")
	importFileCmd.Flags().StringVar(&importTags, "tags", "", "Comma-separated tags (default: front matter)")
	rootCmd.AddCommand(importFileCmd)
}

var importFileCmd = &cobra.Command{
	Use:   "import-file <path>",
	Short: "Import an existing file as a snippet",
	Long: `Import an existing file as a snippet.

Markdown files may carry a YAML front matter block with title and tags.
PDF files are imported as their extracted plain text.

Examples:
  snip import-file notes/git.md
  snip import-file paper.pdf --tags reading`,
	Args: cobra.ExactArgs(1),
	RunE: runImportFile,
}

func runImportFile(cmd *cobra.Command, args []string) error {
	layout, st := openStorage()
	defer st.Close()

	sn, err := importer.Import(st, layout, args[0], importer.Options{
		Title: importTitle,
		Tags:  snippet.ParseTags(importTags),
	})
	if err != nil {
		if errors.Is(err, snippet.ErrNotFound) {
			exitWithError(ExitError, "no such file: %s", args[0])
		}
		exitWithError(ExitError, "%v", err)
	}

	if jsonOutput {
		return outputJSON(sn)
	}
	fmt.Printf("Imported snippet %d: %s\n", sn.ID, sn.Title)
	fmt.Printf("  stored at %s\n", sn.FilePath)
	return nil
}
