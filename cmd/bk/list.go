package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/record"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all source records",
	Long: `List all source records in the library.

Examples:
  bk list
  bk list --limit 100 --human`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenSyncedDatabase(repoRoot)
	defer db.Close()

	records, err := db.ListAll(listLimit)
	if err != nil {
		exitWithError(ExitError, "listing records: %v", err)
	}

	if humanOutput {
		printRecordTable(records)
	} else {
		if records == nil {
			records = []record.SourceRecord{}
		}
		outputJSON(records)
	}

	return nil
}

func printRecordTable(records []record.SourceRecord) {
	if len(records) == 0 {
		fmt.Println("No records in library")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Authors", "Year", "Type"})

	for _, rec := range records {
		t.AppendRow(table.Row{
			truncateString(rec.ID, 14),
			truncateString(rec.Title, ListTitleMaxLen),
			truncateString(record.JoinAuthors(rec.Authors, ", "), 30),
			rec.Year,
			rec.Type,
		})
	}

	t.Render()
	fmt.Printf("\n%d records\n", len(records))
}
