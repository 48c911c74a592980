package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new bibkit library",
	Long: `Initialize a new bibkit library in the current directory.

Creates:
  .bibkit/
  ├── records.jsonl   # Empty file
  ├── config.json     # Default config
  └── cache/          # Empty directory (gitignored)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if err := config.Init(root); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	// Empty records file so the library is immediately exportable
	f, err := os.Create(config.RecordsPath(root))
	if err != nil {
		exitWithError(ExitError, "creating records.jsonl: %v", err)
	}
	f.Close()

	if humanOutput {
		fmt.Printf("Initialized bibkit library in %s\n", root)
	} else {
		outputJSON(StatusResponse{
			Status: "initialized",
			Path:   root,
		})
	}

	return nil
}
