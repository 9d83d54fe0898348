package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marden/snip/internal/clipboard"
	"github.com/marden/snip/internal/snippet"
)

var getCopy bool

func init() {
	getCmd.Flags().BoolVar(&getCopy, "copy", false, "Also copy the content to the clipboard")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a single snippet by id",
	Long: `Print a single snippet by id.

Examples:
  snip get 42
  snip get 42 --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid snippet id: %s", args[0])
	}

	_, st := openStorage()
	defer st.Close()

	sn, err := st.Get(id)
	if err != nil {
		if errors.Is(err, snippet.ErrNotFound) {
			exitWithError(ExitError, "snippet %d not found", id)
		}
		exitWithError(ExitError, "%v", err)
	}

	if getCopy {
		if err := clipboard.Copy(sn.Content); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}

	if jsonOutput {
		return outputJSON(sn)
	}

	title := sn.Title
	if title == "" {
		title = snippet.TitleFromContent(sn.Content)
	}
	fmt.Printf("[%d] %s\n", sn.ID, title)
	if len(sn.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(sn.Tags, ", "))
	}
	fmt.Printf("Created: %s\n\n", sn.CreatedAt.Local().Format(CreatedTimeFormat))
	fmt.Println(sn.Content)
	return nil
}
