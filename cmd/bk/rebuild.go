package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/config"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the cache database from records.jsonl",
	Long: `Rebuild the SQLite cache database from the JSONL source of truth.

The cache is ephemeral; run this after pulling library changes or
whenever the cache looks stale.`,
	RunE: runRebuild,
}

// RebuildResponse reports how many records the rebuilt cache holds.
type RebuildResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	n, err := db.RebuildFromJSONL(config.RecordsPath(repoRoot))
	if err != nil {
		exitWithError(ExitDataError, "rebuilding cache: %v", err)
	}

	if humanOutput {
		fmt.Printf("Rebuilt cache with %d records\n", n)
	} else {
		outputJSON(RebuildResponse{Status: "rebuilt", Records: n})
	}

	return nil
}
