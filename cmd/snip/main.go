// Package main provides the snip CLI entry point.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/marden/snip/internal/config"
	"github.com/marden/snip/internal/editor"
	"github.com/marden/snip/internal/storage"
	"github.com/marden/snip/internal/tui"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	dirFlag    string
	jsonOutput bool
	printFlag  bool
)

func main() {
	// A local .env may carry VISUAL/EDITOR/SNIP_DIR per project.
	_ = godotenv.Load()

	if err := config.InitGlobal(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitUsageError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snip [query...]",
	Short: "Fast terminal snippet manager for code examples and cheat sheets",
	Long: `snip stores short code examples and cheat-sheet notes in a local
SQLite database, tagged and searchable from the terminal.

Examples:
  snip                  Open the interactive browser
  snip python files     Search for snippets matching 'python' and 'files'
  snip add              Compose a new snippet in your editor
  snip import-file x.md Import an existing file`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Storage directory (default .snippets)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of human-readable output")
	rootCmd.Flags().BoolVar(&printFlag, "print", false, "Print search results instead of opening the browser")
	rootCmd.Version = Version
}

// runRoot handles the two implicit modes: no arguments opens the browser
// unfiltered, and bare positionals are a search that opens the browser
// pre-filtered on a terminal or prints one-shot results otherwise.
func runRoot(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	_, st := openStorage()

	if printFlag || jsonOutput || !stdoutIsTerminal() {
		defer st.Close()
		results, err := st.Search(query)
		if err != nil {
			exitWithError(ExitError, "searching: %v", err)
		}
		printSnippets(results)
		return nil
	}

	ed := editor.New(config.FallbackEditor())
	if err := tui.Run(st, ed, query); err != nil {
		exitWithError(ExitError, "session: %v", err)
	}
	return nil
}

// openStorage resolves the layout, guarantees the on-disk structure, and
// opens the record store. Failures here are fatal startup errors.
func openStorage() (config.Layout, *storage.Store) {
	layout := config.ResolveLayout(dirFlag)
	if err := layout.Ensure(); err != nil {
		exitWithError(ExitStorageError, "preparing storage directory: %v", err)
	}

	st, err := storage.Open(layout.DBPath())
	if err != nil {
		exitWithError(ExitStorageError, "opening database: %v", err)
	}
	return layout, st
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
