package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/record"
	"github.com/kthompson/bibkit/internal/style"
)

var (
	citeStyle  string
	citeInText bool
	citePages  string
)

func init() {
	citeCmd.Flags().StringVar(&citeStyle, "style", "", "Citation style: apa, mla, chicago, harvard (default from config)")
	citeCmd.Flags().BoolVar(&citeInText, "intext", false, "Produce a parenthetical in-text citation")
	citeCmd.Flags().StringVar(&citePages, "pages", "", "Page locator for in-text citations")
	rootCmd.AddCommand(citeCmd)
}

var citeCmd = &cobra.Command{
	Use:   "cite [id...]",
	Short: "Format citations for one or more records",
	Long: `Format citations for the given record IDs, or for every record
in the library when no IDs are given.

Examples:
  bk cite 4f2b1c
  bk cite 4f2b1c --style mla
  bk cite 4f2b1c --intext --pages 15
  bk cite --style chicago`,
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	db := mustOpenSyncedDatabase(repoRoot)
	defer db.Close()

	st := cfg.Style()
	if citeStyle != "" {
		parsed, err := style.Parse(citeStyle)
		if err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
		st = parsed
	}

	var records []record.SourceRecord
	if len(args) == 0 {
		all, err := db.ListAll(0)
		if err != nil {
			exitWithError(ExitError, "listing records: %v", err)
		}
		records = all
	} else {
		for _, id := range args {
			rec, err := db.GetByID(id)
			if err != nil {
				exitWithError(ExitError, "getting record %s: %v", id, err)
			}
			if rec == nil {
				exitWithError(ExitError, "record not found: %s", id)
			}
			records = append(records, *rec)
		}
	}

	citations := make([]CitationResponse, len(records))
	for i, rec := range records {
		var text string
		if citeInText {
			text = style.FormatInText(rec, st, citePages)
		} else {
			text = style.FormatFull(rec, st)
		}
		citations[i] = CitationResponse{
			ID:       rec.ID,
			Style:    string(st),
			Citation: text,
		}
	}

	if humanOutput {
		for _, c := range citations {
			fmt.Println(c.Citation)
		}
	} else {
		outputJSON(citations)
	}

	return nil
}
