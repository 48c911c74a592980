package export

import (
	"strings"

	"github.com/kthompson/bibkit/internal/record"
)

// CitationKey derives the BibTeX entry key for a record:
// lowercased first-author surname, the year (or "nd"), and the title
// lowercased with everything non-alphanumeric removed. Keys are stable
// for a given author/year/title but not deduplicated; collisions are an
// accepted limitation.
func CitationKey(rec record.SourceRecord) string {
	surname := alnumLower(record.FirstSurname(rec.Authors))
	if surname == "" {
		surname = "unknown"
	}

	year := alnumLower(rec.Year)
	if year == "" {
		year = "nd"
	}

	return surname + year + alnumLower(rec.Title)
}

// alnumLower lowercases s and strips everything outside [a-z0-9].
func alnumLower(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
