package style

import (
	"strings"

	"github.com/kthompson/bibkit/internal/record"
)

// FormatFull renders the full reference-list entry for a record in the
// requested style. It never fails; an unknown style yields
// UnsupportedSentinel.
func FormatFull(rec record.SourceRecord, st Style) string {
	switch st {
	case APA:
		return apaFull(rec)
	case MLA:
		return mlaFull(rec)
	case Chicago:
		return chicagoFull(rec)
	case Harvard:
		return harvardFull(rec)
	default:
		return UnsupportedSentinel
	}
}

// sentence appends a terminating period unless s already ends with one.
// Author initials and "n.d." carry their own periods.
func sentence(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

// joinPresent joins the non-empty elements of parts with sep.
func joinPresent(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// appendClauses writes the non-empty clauses to b, comma-separated, with
// a leading space and sentence-terminated. Writes nothing when every
// clause is empty.
func appendClauses(b *strings.Builder, clauses ...string) {
	joined := joinPresent(clauses, ", ")
	if joined == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(sentence(joined))
}

// volumeIssue renders "V(I)" with either side optional.
func volumeIssue(volume, issue string) string {
	if issue == "" {
		return volume
	}
	return volume + "(" + issue + ")"
}

// prefixed returns prefix+s, or "" when s is empty.
func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

// italicIf wraps a non-empty string in italic markers.
func italicIf(s string) string {
	if s == "" {
		return ""
	}
	return italic(s)
}

func apaFull(rec record.SourceRecord) string {
	var b strings.Builder
	b.WriteString(record.JoinAuthors(rec.Authors, ", "))
	b.WriteString(" (")
	b.WriteString(yearOr(rec.Year))
	b.WriteString("). ")
	b.WriteString(sentence(rec.Title))

	switch rec.Type {
	case record.TypeJournal:
		appendClauses(&b,
			italicIf(rec.Source),
			volumeIssue(rec.Volume, rec.Issue),
			rec.Pages,
		)
	case record.TypeWebsite:
		if rec.Source != "" {
			b.WriteString(" " + italic(rec.Source) + ".")
		}
		if rec.URL != "" {
			b.WriteString(" " + sentence(rec.URL))
		}
	default: // book, article
		if rec.Source != "" {
			b.WriteString(" " + italic(rec.Source) + ".")
		}
		if rec.Publisher != "" {
			b.WriteString(" " + sentence(rec.Publisher))
		}
	}
	return b.String()
}

func mlaFull(rec record.SourceRecord) string {
	var b strings.Builder
	b.WriteString(sentence(record.JoinAuthors(rec.Authors, ", ")))
	b.WriteString(` "`)
	b.WriteString(sentence(rec.Title))
	b.WriteString(`"`)

	switch rec.Type {
	case record.TypeJournal:
		appendClauses(&b,
			italicIf(rec.Source),
			prefixed("vol. ", rec.Volume),
			prefixed("no. ", rec.Issue),
			yearOr(rec.Year),
			prefixed("pp. ", rec.Pages),
		)
	case record.TypeWebsite:
		joined := joinPresent([]string{italicIf(rec.Source), yearOr(rec.Year)}, ", ")
		b.WriteString(" " + sentence(joined) + " Web.")
	default:
		appendClauses(&b,
			italicIf(rec.Source),
			rec.Publisher,
			yearOr(rec.Year),
		)
	}
	return b.String()
}

func chicagoFull(rec record.SourceRecord) string {
	var b strings.Builder
	b.WriteString(sentence(record.JoinAuthors(rec.Authors, ", ")))
	b.WriteString(` "`)
	b.WriteString(sentence(rec.Title))
	b.WriteString(`"`)

	switch rec.Type {
	case record.TypeJournal:
		if rec.Source != "" {
			b.WriteString(" " + italic(rec.Source))
		}
		if rec.Volume != "" {
			b.WriteString(" " + rec.Volume)
		}
		if rec.Issue != "" {
			b.WriteString(", no. " + rec.Issue)
		}
		b.WriteString(" (" + yearOr(rec.Year) + ")")
		if rec.Pages != "" {
			b.WriteString(": " + rec.Pages)
		}
		b.WriteString(".")
	case record.TypeWebsite:
		if rec.Source != "" {
			b.WriteString(" " + italic(rec.Source) + ".")
		}
		b.WriteString(" " + sentence(yearOr(rec.Year)))
		if rec.URL != "" {
			b.WriteString(" " + sentence(rec.URL))
		}
	default:
		appendClauses(&b,
			rec.Publisher,
			yearOr(rec.Year),
		)
	}
	return b.String()
}

func harvardFull(rec record.SourceRecord) string {
	var b strings.Builder
	b.WriteString(record.JoinAuthors(rec.Authors, ", "))
	b.WriteString(" (")
	b.WriteString(yearOr(rec.Year))
	b.WriteString(") '")
	b.WriteString(rec.Title)
	b.WriteString("'")

	var clauses []string
	switch rec.Type {
	case record.TypeJournal:
		clauses = []string{
			italicIf(rec.Source),
			prefixed("vol. ", rec.Volume),
			prefixed("no. ", rec.Issue),
			prefixed("pp. ", rec.Pages),
		}
	case record.TypeWebsite:
		clauses = []string{
			italicIf(rec.Source),
			prefixed("available at: ", rec.URL),
		}
	default:
		clauses = []string{
			italicIf(rec.Source),
			rec.Publisher,
		}
	}

	joined := joinPresent(clauses, ", ")
	if joined != "" {
		b.WriteString(", ")
		b.WriteString(joined)
	}
	b.WriteString(".")
	return b.String()
}
