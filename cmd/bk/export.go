package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kthompson/bibkit/internal/export"
	"github.com/kthompson/bibkit/internal/record"
	"github.com/kthompson/bibkit/internal/style"
)

var (
	exportFormat string
	exportStyle  string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format: text, rtf, csv, bibtex, ris, endnote, rdf, mendeley, csl (default from config)")
	exportCmd.Flags().StringVar(&exportStyle, "style", "", "Citation style for text and rtf output (default from config)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file or directory (stdout when omitted)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [id...]",
	Short: "Export records to a bibliography format",
	Long: `Export the given records, or the whole library, to a
bibliography interchange format.

Exports are always plain text on stdout, never JSON. When --out names
a directory, a dated default filename is chosen inside it.

Examples:
  bk export --format bibtex > refs.bib
  bk export --format ris --out refs.ris
  bk export --format text --style mla --out .
  bk export 4f2b1c 9a31d0 --format endnote`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	db := mustOpenSyncedDatabase(repoRoot)
	defer db.Close()

	formatName := exportFormat
	if formatName == "" {
		formatName = cfg.DefaultFormat
	}
	if formatName == "" {
		formatName = string(export.FormatText)
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	st := cfg.Style()
	if exportStyle != "" {
		parsed, err := style.Parse(exportStyle)
		if err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
		st = parsed
	}

	var records []record.SourceRecord
	if len(args) == 0 {
		records, err = db.ListAll(0)
		if err != nil {
			exitWithError(ExitError, "listing records: %v", err)
		}
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

	out, err := export.Encode(records, format, st)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if exportOut == "" {
		fmt.Print(out)
		return nil
	}

	path := exportOut
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, export.DefaultFilename(format, st, time.Now()))
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", path, err)
	}

	if humanOutput {
		fmt.Printf("Exported %d records to %s\n", len(records), path)
	} else {
		outputJSON(StatusResponse{Status: "exported", Path: path})
	}

	return nil
}
