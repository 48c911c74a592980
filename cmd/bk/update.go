package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/config"
	"github.com/kthompson/bibkit/internal/record"
	"github.com/kthompson/bibkit/internal/storage"
)

var (
	updateTitle     string
	updateAuthors   []string
	updateYear      string
	updateSource    string
	updateType      string
	updateURL       string
	updateDOI       string
	updatePages     string
	updateVolume    string
	updateIssue     string
	updatePublisher string
)

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringArrayVar(&updateAuthors, "author", nil, "New author list, repeatable (replaces all authors)")
	updateCmd.Flags().StringVar(&updateYear, "year", "", "New publication year")
	updateCmd.Flags().StringVar(&updateSource, "source", "", "New journal, website, or publication name")
	updateCmd.Flags().StringVar(&updateType, "type", "", "New source type")
	updateCmd.Flags().StringVar(&updateURL, "url", "", "New URL")
	updateCmd.Flags().StringVar(&updateDOI, "doi", "", "New DOI")
	updateCmd.Flags().StringVar(&updatePages, "pages", "", "New page range")
	updateCmd.Flags().StringVar(&updateVolume, "volume", "", "New volume number")
	updateCmd.Flags().StringVar(&updateIssue, "issue", "", "New issue number")
	updateCmd.Flags().StringVar(&updatePublisher, "publisher", "", "New publisher name")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a source record",
	Long: `Update fields of a source record. Only the flags given change;
other fields keep their values. Citations are always formatted from
current record data, so edits show up in the next cite or export.

Examples:
  bk update 4f2b1c --year 2022
  bk update 4f2b1c --author "Lee, A." --author "Park, C."`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	flags := cmd.Flags()
	if flags.Changed("title") {
		if updateTitle == "" {
			exitWithError(ExitDataError, "title cannot be empty")
		}
		rec.Title = updateTitle
	}
	if flags.Changed("author") {
		rec.Authors = updateAuthors
	}
	if flags.Changed("year") {
		rec.Year = updateYear
	}
	if flags.Changed("source") {
		rec.Source = updateSource
	}
	if flags.Changed("type") {
		rec.Type = record.NormalizeType(updateType)
	}
	if flags.Changed("url") {
		rec.URL = updateURL
	}
	if flags.Changed("doi") {
		rec.DOI = updateDOI
	}
	if flags.Changed("pages") {
		rec.Pages = updatePages
	}
	if flags.Changed("volume") {
		rec.Volume = updateVolume
	}
	if flags.Changed("issue") {
		rec.Issue = updateIssue
	}
	if flags.Changed("publisher") {
		rec.Publisher = updatePublisher
	}

	if err := storage.ReplaceByID(config.RecordsPath(repoRoot), *rec); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if err := db.ReplaceByID(*rec); err != nil {
		exitWithError(ExitError, "updating cache: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s\n", id)
	} else {
		outputJSON(rec)
	}

	return nil
}
