// Package storage persists SourceRecords in a git-versionable JSONL
// file with an ephemeral SQLite cache for queries.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kthompson/bibkit/internal/record"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL
// lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ReadAll reads all records from a JSONL file. A missing file yields an
// empty slice.
func ReadAll(path string) ([]record.SourceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening records file: %w", err)
	}
	defer f.Close()

	var records []record.SourceRecord
	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec record.SourceRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	return records, nil
}

// Append adds a record to the end of a JSONL file.
func Append(path string, rec record.SourceRecord) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening records file for append: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// WriteAll writes all records to a JSONL file, replacing existing content.
func WriteAll(path string, records []record.SourceRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating records file: %w", err)
	}
	defer f.Close()

	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
		if _, err := f.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	return nil
}

// FindByID returns the index of the record with the given ID.
func FindByID(records []record.SourceRecord, id string) (int, bool) {
	for i, rec := range records {
		if rec.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindByDOI returns the index of the first record with the given DOI.
func FindByDOI(records []record.SourceRecord, doi string) (int, bool) {
	if doi == "" {
		return -1, false
	}
	for i, rec := range records {
		if rec.DOI == doi {
			return i, true
		}
	}
	return -1, false
}

// ReplaceByID swaps in a full replacement record in the JSONL file.
// Records are never partially updated; editing is a whole-record
// replace so previously rendered citation strings are always recomputed
// from current data.
func ReplaceByID(path string, rec record.SourceRecord) error {
	records, err := ReadAll(path)
	if err != nil {
		return err
	}

	idx, ok := FindByID(records, rec.ID)
	if !ok {
		return fmt.Errorf("record not found: %s", rec.ID)
	}
	records[idx] = rec

	return WriteAll(path, records)
}

// DeleteByID removes a record from the JSONL file. Deletion is
// irreversible.
func DeleteByID(path, id string) error {
	records, err := ReadAll(path)
	if err != nil {
		return err
	}

	idx, ok := FindByID(records, id)
	if !ok {
		return fmt.Errorf("record not found: %s", id)
	}
	records = append(records[:idx], records[idx+1:]...)

	return WriteAll(path, records)
}
