// Package main provides the bk CLI entry point.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose enables debug logging
var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bk",
	Short: "Agent-first citation and bibliography manager",
	Long: `bk is an agent-first CLI for managing bibliographic sources.

It stores source records in git-versionable JSONL format with an
ephemeral SQLite cache for fast queries, formats citations in APA,
MLA, Chicago, and Harvard styles, and exports bibliographies to
BibTeX, RIS, EndNote, CSV, RDF, and other formats. All commands
output JSON by default for easy integration with agents and tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.Version = Version
}

// getRepoRoot returns the starting directory for repository discovery.
func getRepoRoot() (string, int) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}

	// BK_ROOT overrides the working directory
	if root := os.Getenv("BK_ROOT"); root != "" {
		cwd = root
	}

	return cwd, 0
}
