package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/config"
	"github.com/kthompson/bibkit/internal/storage"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a source record",
	Long: `Remove a source record from the library. Removal is irreversible.

Example:
  bk remove 4f2b1c`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenSyncedDatabase(repoRoot)
	defer db.Close()

	id := args[0]
	if err := storage.DeleteByID(config.RecordsPath(repoRoot), id); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if err := db.DeleteByID(id); err != nil {
		exitWithError(ExitError, "updating cache: %v", err)
	}

	if humanOutput {
		fmt.Printf("Removed %s\n", id)
	} else {
		outputJSON(StatusResponse{Status: "removed", ID: id})
	}

	return nil
}
