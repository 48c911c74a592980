package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/record"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single source record by ID",
	Long: `Get a single source record by its ID.

Example:
  bk get 4f2b1c`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenSyncedDatabase(repoRoot)
	defer db.Close()

	id := args[0]
	rec, err := db.GetByID(id)
	if err != nil {
		exitWithError(ExitError, "getting record: %v", err)
	}
	if rec == nil {
		exitWithError(ExitError, "record not found: %s", id)
	}

	if humanOutput {
		printRecordDetail(*rec)
	} else {
		outputJSON(rec)
	}

	return nil
}

func printRecordDetail(rec record.SourceRecord) {
	fmt.Println(rec.ID)
	fmt.Println(strings.Repeat("═", 70))
	fmt.Println()

	fmt.Printf("Title:      %s\n", rec.Title)
	fmt.Printf("Authors:    %s\n", record.JoinAuthors(rec.Authors, ", "))
	fmt.Printf("Type:       %s\n", rec.Type)
	if rec.Year != "" {
		fmt.Printf("Year:       %s\n", rec.Year)
	}
	if rec.Source != "" {
		fmt.Printf("Source:     %s\n", rec.Source)
	}
	if rec.Volume != "" {
		fmt.Printf("Volume:     %s\n", rec.Volume)
	}
	if rec.Issue != "" {
		fmt.Printf("Issue:      %s\n", rec.Issue)
	}
	if rec.Pages != "" {
		fmt.Printf("Pages:      %s\n", rec.Pages)
	}
	if rec.Publisher != "" {
		fmt.Printf("Publisher:  %s\n", rec.Publisher)
	}
	if rec.DOI != "" {
		fmt.Printf("DOI:        %s\n", rec.DOI)
	}
	if rec.URL != "" {
		fmt.Printf("URL:        %s\n", rec.URL)
	}
	if rec.DateAccessed != "" {
		fmt.Printf("Accessed:   %s\n", rec.DateAccessed)
	}
	if rec.Confidence > 0 {
		fmt.Printf("Confidence: %.2f\n", rec.Confidence)
	}
}
