package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/record"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 50, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over the library",
	Long: `Search titles, authors, and publication names in the library.

Examples:
  bk search "climate models"
  bk search hinton --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenSyncedDatabase(repoRoot)
	defer db.Close()

	results, err := db.Search(args[0], searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if humanOutput {
		if len(results) == 0 {
			fmt.Println("No matches")
		}
		for i, rec := range results {
			fmt.Printf("%d. %s\n", i+1, truncateString(rec.Title, SearchTitleMaxLen))
			fmt.Printf("   %s (%s)  [%s]\n\n", record.JoinAuthors(rec.Authors, ", "), rec.Year, rec.ID)
		}
	} else {
		if results == nil {
			results = []record.SourceRecord{}
		}
		outputJSON(results)
	}

	return nil
}
