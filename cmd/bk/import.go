package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/importer"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import records from a JSON library export",
	Long: `Import source records from a JSON library export file.

Entries that fail validation are reported and skipped; the rest are
imported. Entries whose ID already exists in the library are skipped
as duplicates.

Example:
  bk import library.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResponse summarizes an import run.
type ImportResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenSyncedDatabase(repoRoot)
	defer db.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", args[0], err)
	}

	records, parseErrs := importer.ParseLibrary(data)
	if records == nil && len(parseErrs) > 0 {
		exitWithError(ExitDataError, "%v", parseErrs[0])
	}

	resp := ImportResponse{}
	for _, e := range parseErrs {
		resp.Errors = append(resp.Errors, e.Error())
		resp.Skipped++
	}

	for _, rec := range records {
		existing, err := db.GetByID(rec.ID)
		if err != nil {
			exitWithError(ExitError, "checking for duplicate: %v", err)
		}
		if existing != nil {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("duplicate id skipped: %s", rec.ID))
			continue
		}
		storeRecord(repoRoot, db, rec)
		resp.Imported++
	}

	if humanOutput {
		fmt.Printf("Imported %d records (%d skipped)\n", resp.Imported, resp.Skipped)
		for _, e := range resp.Errors {
			fmt.Printf("  %s\n", e)
		}
	} else {
		outputJSON(resp)
	}

	return nil
}
