package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kthompson/bibkit/internal/config"
	"github.com/kthompson/bibkit/internal/record"
	"github.com/kthompson/bibkit/internal/storage"
)

// Title truncation lengths by context
const (
	ListTitleMaxLen   = 50 // Used in list command output
	SearchTitleMaxLen = 70 // Used in search result summaries
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	ID     string `json:"id,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// CitationResponse pairs a record ID with a formatted citation.
type CitationResponse struct {
	ID       string `json:"id"`
	Style    string `json:"style"`
	Citation string `json:"citation"`
}

// mustFindRepository locates the enclosing library or exits.
func mustFindRepository() string {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return repoRoot
}

// mustOpenDatabase opens the library's SQLite cache or exits.
func mustOpenDatabase(repoRoot string) *storage.DB {
	db, err := storage.OpenDB(config.DBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// mustOpenSyncedDatabase opens the cache database and lazily rebuilds
// it from the JSONL source of truth when the cache is empty (fresh
// clone, deleted cache directory).
func mustOpenSyncedDatabase(repoRoot string) *storage.DB {
	db := mustOpenDatabase(repoRoot)

	count, err := db.Count()
	if err != nil {
		exitWithError(ExitError, "reading database: %v", err)
	}
	if count == 0 {
		if _, err := db.RebuildFromJSONL(config.RecordsPath(repoRoot)); err != nil {
			exitWithError(ExitDataError, "rebuilding cache: %v", err)
		}
	}
	return db
}

// mustLoadConfig reads the library config or exits.
func mustLoadConfig(repoRoot string) *config.Config {
	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// storeRecord appends a record to the JSONL source of truth and
// mirrors it into the cache database.
func storeRecord(repoRoot string, db *storage.DB, rec record.SourceRecord) {
	if err := storage.Append(config.RecordsPath(repoRoot), rec); err != nil {
		exitWithError(ExitError, "writing record: %v", err)
	}
	if err := db.Insert(rec); err != nil {
		exitWithError(ExitError, "caching record: %v", err)
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
