package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marden/snip/internal/config"
)

func init() {
	rootCmd.AddCommand(dirCmd)
}

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the resolved storage directory",
	Args:  cobra.NoArgs,
	RunE:  runDir,
}

// DirResponse is the JSON form of the dir command output.
type DirResponse struct {
	Base     string `json:"base"`
	Files    string `json:"files"`
	Database string `json:"database"`
}

func runDir(cmd *cobra.Command, args []string) error {
	layout := config.ResolveLayout(dirFlag)
	if err := layout.Ensure(); err != nil {
		exitWithError(ExitStorageError, "preparing storage directory: %v", err)
	}

	if jsonOutput {
		return outputJSON(DirResponse{
			Base:     layout.Base(),
			Files:    layout.FilesDir(),
			Database: layout.DBPath(),
		})
	}

	fmt.Printf("Snippets directory: %s\n", layout.Base())
	fmt.Printf("Files directory:    %s\n", layout.FilesDir())
	fmt.Printf("Database:           %s\n", layout.DBPath())
	return nil
}
