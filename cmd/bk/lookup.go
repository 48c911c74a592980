package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/config"
	"github.com/kthompson/bibkit/internal/record"
	"github.com/kthompson/bibkit/internal/search"
)

var (
	lookupDOI   bool
	lookupAdd   bool
	lookupLimit int
)

func init() {
	lookupCmd.Flags().BoolVar(&lookupDOI, "doi", false, "Treat the argument as a DOI instead of a query")
	lookupCmd.Flags().BoolVar(&lookupAdd, "add", false, "Add the best match to the library")
	lookupCmd.Flags().IntVar(&lookupLimit, "limit", search.DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Look up bibliographic metadata on Crossref",
	Long: `Look up works on the Crossref registry by free-text query or DOI.

Set BIBKIT_MAILTO (environment or .env file) to join Crossref's
polite pool.

Examples:
  bk lookup "attention is all you need"
  bk lookup 10.1038/xyz --doi --add`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	client := newCrossrefClient()

	var results []record.SourceRecord
	if lookupDOI {
		rec, err := client.LookupDOI(cmd.Context(), args[0])
		if err != nil {
			if search.IsNotFound(err) {
				exitWithError(ExitDataError, "DOI not found: %s", args[0])
			}
			exitWithError(ExitError, "%v", err)
		}
		results = []record.SourceRecord{*rec}
	} else {
		var err error
		results, err = client.Search(cmd.Context(), args[0], lookupLimit)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	if lookupAdd {
		if len(results) == 0 {
			exitWithError(ExitDataError, "no results to add")
		}
		repoRoot := mustFindRepository()
		db := mustOpenSyncedDatabase(repoRoot)
		defer db.Close()
		storeRecord(repoRoot, db, results[0])
	}

	if humanOutput {
		for i, rec := range results {
			fmt.Printf("%d. [%.2f] %s\n", i+1, rec.Confidence, truncateString(rec.Title, SearchTitleMaxLen))
			fmt.Printf("   %s (%s)  %s\n\n", record.JoinAuthors(rec.Authors, ", "), rec.Year, rec.DOI)
		}
	} else {
		outputJSON(results)
	}

	return nil
}

// newCrossrefClient builds a client carrying the configured polite-pool
// address, when one is set globally.
func newCrossrefClient() *search.Client {
	var opts []search.ClientOption
	if global, err := config.LoadGlobalConfig(); err == nil && global.CrossrefMailto != "" {
		opts = append(opts, search.WithMailto(global.CrossrefMailto))
	}
	return search.NewClient(opts...)
}
