// Package record defines the core domain types for citable sources.
package record

import "strings"

// SourceType classifies a source for formatting and export purposes.
// The persisted set is closed; richer form-level subtypes (newspaper,
// thesis, conference, report) collapse to TypeArticle at the boundary.
type SourceType string

const (
	TypeArticle SourceType = "article"
	TypeJournal SourceType = "journal"
	TypeWebsite SourceType = "website"
	TypeBook    SourceType = "book"
)

// SourceRecord is the canonical normalized metadata for a citable source.
type SourceRecord struct {
	// ID is an opaque stable identifier assigned at creation, never reused.
	ID string `json:"id"`

	// Title is required for any rendering.
	Title string `json:"title"`

	// Authors are ordered, conventionally "Family, Given" but not
	// validated. The first author drives in-text citations and sort keys.
	Authors []string `json:"authors"`

	// Year is a string; empty means "no date".
	Year string `json:"year"`

	// Source is the container name: journal, website, or publisher-as-source.
	Source string `json:"source"`

	Type SourceType `json:"type"`

	// Optional fields, omitted from output when empty.
	URL       string `json:"url,omitempty"`
	DOI       string `json:"doi,omitempty"`
	Pages     string `json:"pages,omitempty"` // "start-end" range or single locator
	Volume    string `json:"volume,omitempty"`
	Issue     string `json:"issue,omitempty"`
	Publisher string `json:"publisher,omitempty"`

	// DateAccessed is an ISO date string, set for web sources.
	DateAccessed string `json:"date_accessed,omitempty"`

	// Confidence is a match-quality score in [0,1] attached to
	// search-derived records. Display-only; formatting and export ignore it.
	Confidence float64 `json:"confidence,omitempty"`
}

// NormalizeType maps an arbitrary type string onto the closed SourceType
// set. Form-level subtypes and unrecognized values become TypeArticle.
func NormalizeType(s string) SourceType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "journal", "journal-article":
		return TypeJournal
	case "website", "webpage", "web":
		return TypeWebsite
	case "book", "monograph":
		return TypeBook
	default:
		// article, newspaper, thesis, conference, report, and anything else
		return TypeArticle
	}
}

// SplitPages splits a pages value on the first hyphen into start and end.
// A value without a hyphen is a single page/locator and end is empty.
func SplitPages(pages string) (start, end string) {
	pages = strings.TrimSpace(pages)
	if idx := strings.Index(pages, "-"); idx >= 0 {
		return strings.TrimSpace(pages[:idx]), strings.TrimSpace(pages[idx+1:])
	}
	return pages, ""
}
