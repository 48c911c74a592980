package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/config"
)

var configGlobal bool

func init() {
	configCmd.PersistentFlags().BoolVar(&configGlobal, "global", false, "Operate on the global config (~/.config/bibkit/config.yml)")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get and set configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show configuration",
	Long: `Show the library configuration, or the global configuration
with --global.

Examples:
  bk config get
  bk config get --global`,
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Library keys: preferred_style, default_format
Global keys:  crossref_mailto, preferred_style

Examples:
  bk config set preferred_style mla
  bk config set default_format bibtex
  bk config set crossref_mailto me@example.org --global`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configGlobal {
		global, err := config.LoadGlobalConfig()
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		if humanOutput {
			fmt.Printf("crossref_mailto: %s\n", global.CrossrefMailto)
			fmt.Printf("preferred_style: %s\n", global.PreferredStyle)
		} else {
			outputJSON(global)
		}
		return nil
	}

	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	if humanOutput {
		fmt.Printf("preferred_style: %s\n", cfg.PreferredStyle)
		fmt.Printf("default_format:  %s\n", cfg.DefaultFormat)
	} else {
		outputJSON(cfg)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if configGlobal {
		global, err := config.LoadGlobalConfig()
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		switch key {
		case "crossref_mailto":
			global.CrossrefMailto = value
		case "preferred_style":
			global.PreferredStyle = value
		default:
			exitWithError(ExitDataError, "unknown global config key: %s", key)
		}
		if err := config.SaveGlobalConfig(global); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	} else {
		repoRoot := mustFindRepository()
		cfg := mustLoadConfig(repoRoot)
		if err := cfg.Set(key, value); err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
		if err := cfg.Save(repoRoot); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	if humanOutput {
		fmt.Printf("Set %s = %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}

	return nil
}
