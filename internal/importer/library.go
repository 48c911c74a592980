// Package importer loads source records from external library exports.
package importer

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/kthompson/bibkit/internal/record"
)

// FlexibleString can unmarshal from either string or number JSON
// values. Library exports in the wild disagree on whether years and
// volume numbers are strings.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleString(n.String())
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*f = FlexibleString(strconv.Itoa(i))
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleString", string(data))
}

func (f FlexibleString) String() string {
	return string(f)
}

// LibraryEntry represents a single entry in a JSON library export.
// Field names match the record JSON encoding, with flexible scalar
// types for fields other tools emit as numbers.
type LibraryEntry struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Authors      []string       `json:"authors"`
	Year         FlexibleString `json:"year"`
	Source       string         `json:"source"`
	Type         string         `json:"type"`
	URL          string         `json:"url"`
	DOI          string         `json:"doi"`
	Pages        FlexibleString `json:"pages"`
	Volume       FlexibleString `json:"volume"`
	Issue        FlexibleString `json:"issue"`
	Publisher    string         `json:"publisher"`
	DateAccessed string         `json:"date_accessed"`
	Confidence   float64        `json:"confidence"`
}

// ParseLibrary parses a JSON library export and returns the records
// that converted cleanly, plus one error per entry that did not.
func ParseLibrary(data []byte) ([]record.SourceRecord, []error) {
	var entries []LibraryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, []error{fmt.Errorf("parsing library JSON: %w", err)}
	}

	var records []record.SourceRecord
	var errs []error

	for i, entry := range entries {
		rec, err := entryToRecord(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i+1, entry.Title, err))
			continue
		}
		records = append(records, rec)
	}

	return records, errs
}

func entryToRecord(entry LibraryEntry) (record.SourceRecord, error) {
	if entry.Title == "" {
		return record.SourceRecord{}, fmt.Errorf("missing required field 'title'")
	}

	id := entry.ID
	if id == "" {
		id = uuid.New().String()
	}

	return record.SourceRecord{
		ID:           id,
		Title:        entry.Title,
		Authors:      entry.Authors,
		Year:         entry.Year.String(),
		Source:       entry.Source,
		Type:         record.NormalizeType(entry.Type),
		URL:          entry.URL,
		DOI:          entry.DOI,
		Pages:        entry.Pages.String(),
		Volume:       entry.Volume.String(),
		Issue:        entry.Issue.String(),
		Publisher:    entry.Publisher,
		DateAccessed: entry.DateAccessed,
		Confidence:   entry.Confidence,
	}, nil
}
