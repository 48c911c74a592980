package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/record"
)

var (
	addAuthors   []string
	addYear      string
	addSource    string
	addType      string
	addURL       string
	addDOI       string
	addPages     string
	addVolume    string
	addIssue     string
	addPublisher string
	addID        string
)

func init() {
	addCmd.Flags().StringArrayVar(&addAuthors, "author", nil, "Author name, repeatable (\"Family, Given\" preferred)")
	addCmd.Flags().StringVar(&addYear, "year", "", "Publication year")
	addCmd.Flags().StringVar(&addSource, "source", "", "Journal, website, or publication name")
	addCmd.Flags().StringVar(&addType, "type", "article", "Source type: article, journal, website, book")
	addCmd.Flags().StringVar(&addURL, "url", "", "URL of the source")
	addCmd.Flags().StringVar(&addDOI, "doi", "", "Digital Object Identifier")
	addCmd.Flags().StringVar(&addPages, "pages", "", "Page range (e.g. 10-20)")
	addCmd.Flags().StringVar(&addVolume, "volume", "", "Volume number")
	addCmd.Flags().StringVar(&addIssue, "issue", "", "Issue number")
	addCmd.Flags().StringVar(&addPublisher, "publisher", "", "Publisher name")
	addCmd.Flags().StringVar(&addID, "id", "", "Record ID (generated when omitted)")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a source record manually",
	Long: `Add a source record with explicit fields.

Examples:
  bk add "Climate Models" --author "Lee, A." --author "Kim, B." \
    --year 2021 --source Nature --type journal --volume 12 --issue 4 \
    --pages 10-20 --doi 10.1038/xyz
  bk add "Go Blog Post" --type website --url https://go.dev/blog/x`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenSyncedDatabase(repoRoot)
	defer db.Close()

	id := addID
	if id == "" {
		id = uuid.New().String()
	}

	rec := record.SourceRecord{
		ID:        id,
		Title:     args[0],
		Authors:   addAuthors,
		Year:      addYear,
		Source:    addSource,
		Type:      record.NormalizeType(addType),
		URL:       addURL,
		DOI:       addDOI,
		Pages:     addPages,
		Volume:    addVolume,
		Issue:     addIssue,
		Publisher: addPublisher,
	}
	rec.Confidence = 1.0 // manual entry

	if existing, err := db.GetByID(rec.ID); err != nil {
		exitWithError(ExitError, "checking for duplicate: %v", err)
	} else if existing != nil {
		exitWithError(ExitDataError, "record already exists: %s", rec.ID)
	}

	storeRecord(repoRoot, db, rec)

	if humanOutput {
		fmt.Printf("Added %s: %s\n", rec.ID, rec.Title)
	} else {
		outputJSON(rec)
	}

	return nil
}
