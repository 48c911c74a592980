package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kthompson/bibkit/internal/record"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite cache database.
type DB struct {
	db *sql.DB
}

// selectFields is the standard field list for SELECT queries.
const selectFields = `id, title, authors_json, year, source, type,
	url, doi, pages, volume, issue, publisher, date_accessed, confidence`

// OpenDB opens or creates the cache database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			authors_json TEXT NOT NULL,
			year TEXT,
			source TEXT,
			type TEXT NOT NULL,
			url TEXT,
			doi TEXT,
			pages TEXT,
			volume TEXT,
			issue TEXT,
			publisher TEXT,
			date_accessed TEXT,
			confidence REAL
		);

		CREATE INDEX IF NOT EXISTS idx_records_doi ON records(doi) WHERE doi IS NOT NULL AND doi != '';

		CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts5(
			id,
			title,
			authors_text,
			source
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the cache and rebuilds it from a JSONL file.
// Returns the number of records loaded.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	records, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}

	if _, err := d.db.Exec("DELETE FROM records"); err != nil {
		return 0, fmt.Errorf("clearing records table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM records_fts"); err != nil {
		return 0, fmt.Errorf("clearing records_fts table: %w", err)
	}

	for _, rec := range records {
		if err := d.Insert(rec); err != nil {
			return 0, err
		}
	}

	return len(records), nil
}

// Insert adds a record to the cache.
func (d *DB) Insert(rec record.SourceRecord) error {
	authorsJSON, err := json.Marshal(rec.Authors)
	if err != nil {
		return fmt.Errorf("marshaling authors for %s: %w", rec.ID, err)
	}

	_, err = d.db.Exec(`
		INSERT INTO records (`+selectFields+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, string(authorsJSON), rec.Year, rec.Source, string(rec.Type),
		rec.URL, rec.DOI, rec.Pages, rec.Volume, rec.Issue, rec.Publisher,
		rec.DateAccessed, rec.Confidence,
	)
	if err != nil {
		return fmt.Errorf("inserting record %s: %w", rec.ID, err)
	}

	_, err = d.db.Exec(`
		INSERT INTO records_fts (id, title, authors_text, source)
		VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Title, strings.Join(rec.Authors, ", "), rec.Source,
	)
	if err != nil {
		return fmt.Errorf("inserting fts for %s: %w", rec.ID, err)
	}

	return nil
}

// ReplaceByID swaps in a full replacement record. Partial updates are
// deliberately not offered.
func (d *DB) ReplaceByID(rec record.SourceRecord) error {
	if err := d.DeleteByID(rec.ID); err != nil {
		return err
	}
	return d.Insert(rec)
}

// DeleteByID removes a record from the cache.
func (d *DB) DeleteByID(id string) error {
	if _, err := d.db.Exec("DELETE FROM records WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	if _, err := d.db.Exec("DELETE FROM records_fts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting fts for %s: %w", id, err)
	}
	return nil
}

// GetByID retrieves a record by ID. Returns nil when not found.
func (d *DB) GetByID(id string) (*record.SourceRecord, error) {
	row := d.db.QueryRow(`SELECT `+selectFields+` FROM records WHERE id = ?`, id)
	return scanRecord(row)
}

// ListAll returns all records ordered by ID, optionally limited.
func (d *DB) ListAll(limit int) ([]record.SourceRecord, error) {
	query := `SELECT ` + selectFields + ` FROM records ORDER BY id`
	var args []interface{}

	if limit > 0 {
		query += " LIMIT ?"
		args = []interface{}{limit}
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Count returns the total number of records.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}

// Search performs a full-text search over title, authors, and source.
func (d *DB) Search(query string, limit int) ([]record.SourceRecord, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := d.db.Query(`
		SELECT `+selectFields+`
		FROM records
		WHERE id IN (SELECT id FROM records_fts WHERE records_fts MATCH ?)
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// prepareFTSQuery quotes terms that would otherwise hit FTS5 syntax.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}

// scanner covers sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*record.SourceRecord, error) {
	var rec record.SourceRecord
	var typ string
	var authorsJSON string
	var year, source, url, doi, pages, volume, issue, publisher, accessed sql.NullString
	var confidence sql.NullFloat64

	err := s.Scan(
		&rec.ID, &rec.Title, &authorsJSON, &year, &source, &typ,
		&url, &doi, &pages, &volume, &issue, &publisher, &accessed, &confidence,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rec.Type = record.SourceType(typ)
	rec.Year = year.String
	rec.Source = source.String
	rec.URL = url.String
	rec.DOI = doi.String
	rec.Pages = pages.String
	rec.Volume = volume.String
	rec.Issue = issue.String
	rec.Publisher = publisher.String
	rec.DateAccessed = accessed.String
	rec.Confidence = confidence.Float64

	if err := json.Unmarshal([]byte(authorsJSON), &rec.Authors); err != nil {
		return nil, fmt.Errorf("parsing authors for %s: %w", rec.ID, err)
	}

	return &rec, nil
}

func scanRecords(rows *sql.Rows) ([]record.SourceRecord, error) {
	var records []record.SourceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}
