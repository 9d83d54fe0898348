package main

import (
	"github.com/spf13/cobra"

	"github.com/marden/snip/internal/config"
)

var (
	listLimit int
	listTag   string
)

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = configured default, then all)")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Only snippets carrying this tag")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent snippets",
	Long: `List snippets, most recent first.

Examples:
  snip list
  snip list --limit 10
  snip list --tag python`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	_, st := openStorage()
	defer st.Close()

	limit := listLimit
	if limit == 0 {
		limit = config.ListLimit()
	}

	snippets, err := st.List(limit, listTag)
	if err != nil {
		exitWithError(ExitError, "listing snippets: %v", err)
	}

	printSnippets(snippets)
	return nil
}
