package style

import (
	"github.com/kthompson/bibkit/internal/record"
)

// FormatInText renders the short parenthetical citation for a record.
// pages is a caller-supplied locator for the specific passage being
// cited (it is not read from the record); pass "" for none. Never
// fails; an unknown style yields UnsupportedSentinel.
func FormatInText(rec record.SourceRecord, st Style, pages string) string {
	surname := record.FirstSurname(rec.Authors)
	year := yearOr(rec.Year)

	switch st {
	case APA:
		names := surname
		switch {
		case len(rec.Authors) == 2:
			names = surname + " & " + record.Surname(rec.Authors[1])
		case len(rec.Authors) >= 3:
			names = surname + " et al."
		}
		cite := "(" + names + ", " + year
		if pages != "" {
			cite += ", p. " + pages
		}
		return cite + ")"
	case MLA:
		if pages != "" {
			return "(" + surname + " " + pages + ")"
		}
		return "(" + surname + ")"
	case Chicago:
		cite := "(" + surname + " " + year
		if pages != "" {
			cite += ", " + pages
		}
		return cite + ")"
	case Harvard:
		cite := "(" + surname + " " + year
		if pages != "" {
			cite += ": " + pages
		}
		return cite + ")"
	default:
		return UnsupportedSentinel
	}
}
