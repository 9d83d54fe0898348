package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show snippet and tag statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	_, st := openStorage()
	defer st.Close()

	stats, err := st.Stats()
	if err != nil {
		exitWithError(ExitError, "computing stats: %v", err)
	}

	if jsonOutput {
		return outputJSON(stats)
	}

	fmt.Printf("Total snippets: %d\n", stats.Total)
	fmt.Printf("Unique tags:    %d\n", len(stats.TagCounts))

	if len(stats.TagCounts) == 0 {
		return nil
	}

	type tagCount struct {
		tag   string
		count int
	}
	counts := make([]tagCount, 0, len(stats.TagCounts))
	for tag, n := range stats.TagCounts {
		counts = append(counts, tagCount{tag, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].tag < counts[j].tag
	})

	fmt.Println("\nTags:")
	for _, tc := range counts {
		fmt.Printf("  %-20s %d\n", tc.tag, tc.count)
	}
	return nil
}
