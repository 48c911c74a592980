package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/fetch"
	"github.com/kthompson/bibkit/internal/search"
)

var (
	pdfAdd     bool
	pdfResolve bool
)

func init() {
	pdfCmd.Flags().BoolVar(&pdfAdd, "add", false, "Add the extracted record to the library")
	pdfCmd.Flags().BoolVar(&pdfResolve, "resolve", false, "Resolve an extracted DOI against Crossref for full metadata")
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <file>",
	Short: "Build a source record from a PDF file",
	Long: `Extract citation metadata from a local PDF file.

The opening pages are scanned for a DOI and a title. With --resolve,
an extracted DOI is looked up on Crossref and the registered metadata
replaces the extracted guesses.

Examples:
  bk pdf paper.pdf
  bk pdf paper.pdf --resolve --add`,
	Args: cobra.ExactArgs(1),
	RunE: runPDF,
}

func runPDF(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	rec, err := fetch.FromPDF(args[0])
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", args[0], err)
	}

	if pdfResolve && rec.DOI != "" {
		resolved, err := newCrossrefClient().LookupDOI(cmd.Context(), rec.DOI)
		if err != nil {
			if !search.IsNotFound(err) {
				exitWithError(ExitError, "resolving DOI: %v", err)
			}
		} else {
			resolved.ID = rec.ID
			resolved.DateAccessed = rec.DateAccessed
			rec = *resolved
		}
	}

	if pdfAdd {
		repoRoot := mustFindRepository()
		db := mustOpenSyncedDatabase(repoRoot)
		defer db.Close()
		storeRecord(repoRoot, db, rec)
	}

	if humanOutput {
		printRecordDetail(rec)
		if pdfAdd {
			fmt.Println()
			fmt.Println("Added to library")
		}
	} else {
		outputJSON(rec)
	}

	return nil
}
